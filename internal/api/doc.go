// Package api handles incoming HTTP requests, request validation and
// response formatting for the /users endpoints and the health probes. It
// translates HTTP concerns to calls on the service layer and maps service
// errors back to status codes.
package api
