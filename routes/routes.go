package routes

// Routes wires gin route groups for the geocoder HTTP façade.
//
// Layout:
// - api.go: versioned API routes (/v1/*), health probes, middleware and
//   the SetupAllRoutes entry point
// - web.go: landing/docs routes (/, /docs)
//
// Usage:
// routes.SetupAllRoutes(router, geocodeController, adminController)
