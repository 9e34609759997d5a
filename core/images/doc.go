// Package images downloads product images, attaches them to catalog parts and
// optionally archives them in object storage.
package images
