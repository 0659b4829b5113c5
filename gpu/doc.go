// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu hands images to a GPU texture target and reads them back.
//
// The package does not create devices or queues. The host application
// implements Uploader (and optionally Reader) on top of its own WebGPU
// stack; this package only builds the texture descriptor with per-level
// data layouts and makes sure the pixel data is in a format the GPU can
// sample.
//
// Formats with a direct texture equivalent (Grayscale as R8Unorm and
// R8G8B8A8 as RGBA8Unorm) are uploaded as is. Other uncompressed formats
// are converted to R8G8B8A8 on a copy, so the caller's image is never
// modified. Compressed block formats are rejected.
package gpu
