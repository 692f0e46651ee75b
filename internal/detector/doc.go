// Package detector finds barcodes in images and classifies their content.
//
// [Local] runs the gozxing readers in-process: the multi QR reader always,
// Data Matrix and the linear (1D) readers when enabled. Each decoded text is
// passed through [Classify] which recognises Wi-Fi, URL, e-mail and contact
// payloads.
package detector
