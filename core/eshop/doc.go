// Package eshop reads product data from Next.js shop pages.
//
// Product pages embed their data in a <script id="__NEXT_DATA__"> JSON
// payload. The payload holds a urql cache with exactly one entry whose "data"
// field is itself a JSON document containing the product. Anything else
// (no script, several scripts, several cache entries, an incomplete entry) is
// a fatal error for the page.
package eshop
