// Package services holds the types shared by the Google Maps web service
// requests: travel modes, unit systems, locations and the locale and routing
// options several requests carry.
//
// The subpackages geocoding, directions and distancematrix model the requests
// themselves. Nothing here talks to the network; a request is a validated value
// a client can turn into a query string.
package services
