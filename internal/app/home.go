package app

import "context"

func homeScreen() *Screen {
	return &Screen{
		Title: "MediChat AI",
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n=== MediChat AI: your personal health assistant ===\n")
			if a.deps.Sessions.IsLoggedIn() {
				if user := a.deps.Sessions.Current().User; user != nil {
					a.printf("Logged in as %s\n", user.Username)
				} else {
					a.printf("Logged in (admin)\n")
				}
			} else {
				a.printf("Not logged in\n")
			}

			a.printf("\nScreens:\n")
			a.printf("  %-18s chat with the assistant\n", RouteChat)
			a.printf("  %-18s analyze a food photo\n", RouteFoodAnalysis)
			a.printf("  %-18s track an activity\n", RouteFitnessTracker)
			a.printf("  %-18s view your medical profile\n", RouteProfile)
			a.printf("  %-18s edit your medical profile\n", RouteProfileSetup)
			a.printf("  %-18s sign up\n", RouteSignup)
			a.printf("  %-18s log in\n", RouteLogin)
			a.printf("  %-18s admin login\n", RouteAdminLogin)
			a.printf("  %-18s admin document upload\n", RouteAdminDashboard)
			a.printf("  %-18s send feedback\n", RouteFeedback)
			a.printf("  %-18s help\n", RouteHelp)
			a.printf("  %-18s exit\n", RouteQuit)

			line, ok := a.prompt("where to? ")
			if !ok {
				return RouteQuit, nil
			}
			if line == "" {
				return RouteHome, nil
			}
			if line == "logout" {
				return a.logout(ctx), nil
			}
			return line, nil
		},
	}
}
