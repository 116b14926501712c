package app

import "context"

// Screen is one navigable view. Run renders the screen, handles its
// actions, and returns the next route.
type Screen struct {
	Title         string
	RequiresAuth  bool
	RequiresAdmin bool
	Run           func(ctx context.Context, a *App) (string, error)
}

// Routes the client navigates between. RouteQuit exits the loop.
const (
	RouteHome           = "/"
	RouteSignup         = "/signup"
	RouteLogin          = "/login"
	RouteChat           = "/chat"
	RouteFoodAnalysis   = "/food-analysis"
	RouteFitnessTracker = "/fitness-tracker"
	RouteProfileSetup   = "/profile-setup"
	RouteProfile        = "/profile"
	RouteAdminLogin     = "/admin-login"
	RouteAdminDashboard = "/admin-dashboard"
	RouteFeedback       = "/feedback"
	RouteHelp           = "/help"
	RouteQuit           = "quit"
)

// Router resolves a path to its screen, falling back to the 404 screen for
// anything unknown.
type Router struct {
	screens  map[string]*Screen
	notFound *Screen
}

func NewRouter() *Router {
	r := &Router{screens: make(map[string]*Screen)}
	r.register(RouteHome, homeScreen())
	r.register(RouteSignup, signupScreen())
	r.register(RouteLogin, loginScreen())
	r.register(RouteChat, chatScreen())
	r.register(RouteFoodAnalysis, foodAnalysisScreen())
	r.register(RouteFitnessTracker, fitnessScreen())
	r.register(RouteProfileSetup, profileSetupScreen())
	r.register(RouteProfile, profileScreen())
	r.register(RouteAdminLogin, adminLoginScreen())
	r.register(RouteAdminDashboard, adminDashboardScreen())
	r.register(RouteFeedback, feedbackScreen())
	r.register(RouteHelp, helpScreen())
	r.notFound = notFoundScreen()
	return r
}

func (r *Router) register(path string, s *Screen) {
	r.screens[path] = s
}

// Resolve returns the screen for a path, or the 404 screen
func (r *Router) Resolve(path string) *Screen {
	if s, ok := r.screens[path]; ok {
		return s
	}
	return r.notFound
}
