package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteRegister = RouteAuth + "/register"
	RouteLogin    = RouteAuth + "/login"
	RouteLogout   = RouteAuth + "/logout"

	// listings
	RouteListings = RouteApiV1 + "/listings"
	RouteListing  = RouteListings + "/:listing_id"

	// create-listing draft
	RouteDraftImages = RouteApiV1 + "/dashboard/images"
	RouteDraftImage  = RouteDraftImages + "/:image_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"

	// browser-facing destinations used in redirects
	RouteHome          = "/"
	RouteDashboardPage = "/dashboard"
)
