// Package api handles incoming HTTP requests: request decoding and
// validation, mapping service errors to status codes, and response
// formatting. It adapts HTTP concerns to the drill service operations.
package api
