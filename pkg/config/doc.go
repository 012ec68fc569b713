// Package config loads stub files.
//
// A stub file is YAML or JSON and lists request descriptions together with
// the response to return for them:
//
//	version: "1"
//	stubs:
//	  - id: create-order
//	    request:
//	      method: POST
//	      url: https://api.example.com/orders
//	      headers:
//	        Content-Type: application/json
//	      body:
//	        json: {id: 1, name: a}
//	    response:
//	      status: 201
//	      json: {ok: true}
//
// Request URLs are given either exactly (url) or as a regular expression
// (urlPattern). A body takes at most one criterion:
//
//   - equals: the body text must be exactly this string
//   - pattern: a regular expression found anywhere in the body text
//   - base64: the body bytes must equal the decoded bytes
//   - json: the body must decode to a JSON value equal to this one, so
//     field order and whitespace do not matter
//
// Files are validated against an embedded JSON Schema before they are
// converted, and ${VAR} / ${VAR:-default} references are expanded from the
// environment.
package config
