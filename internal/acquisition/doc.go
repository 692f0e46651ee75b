// Package acquisition obtains the image to scan: either by running the
// configured capture command ([Camera]) or by validating a file chosen in
// the picker ([Gallery]).
package acquisition
