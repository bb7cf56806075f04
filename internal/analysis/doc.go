// Package analysis sends a stamp image to the multimodal endpoint and
// returns the raw structured JSON the model produced.
package analysis
