// Package middleware contains HTTP middleware for the status server.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting every route.
//   - rayid: Generates a Request ID (RayID) for every incoming request,
//     injecting it into the context and the X-Ray-ID response header.
//
// Register rayid first so that rejected requests are traced as well.
package middleware
