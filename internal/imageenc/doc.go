// Package imageenc reads stamp images from disk and prepares them for
// inline transfer to the multimodal endpoint.
package imageenc
