// Package smsspam obtains the SMS Spam Collection: it fetches the zip archive over HTTP
// (optionally through a Redis cache or from a local file), verifies it and extracts the
// tab-separated text member that the vectorizer parses.
package smsspam
