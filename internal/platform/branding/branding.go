// Package branding centralizes product naming used across surfaces.
package branding

// AppName is the public product name.
const AppName = "Aegistry"

// ProductLine is the one-line product description used in page metadata.
const ProductLine = "Sanctions and PEP screening API"
