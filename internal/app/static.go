package app

import "context"

func feedbackScreen() *Screen {
	return &Screen{
		Title: "Feedback",
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n--- Feedback ---\n")
			a.printf("We'd love to hear from you! Write to feedback@medichat.example.\n")
			a.prompt("press enter to go back")
			return RouteHome, nil
		},
	}
}

func helpScreen() *Screen {
	return &Screen{
		Title: "Help",
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n--- Help ---\n")
			a.printf("Navigate by typing a route at the home prompt, e.g. %s.\n", RouteChat)
			a.printf("Chat accepts plain text plus /attach, /record, /send, /clear.\n")
			a.printf("The fitness tracker needs a position source; set GEO_TRACK_FILE to a lat,lon track file.\n")
			a.printf("Type logout at the home prompt to end your session.\n")
			a.prompt("press enter to go back")
			return RouteHome, nil
		},
	}
}

func notFoundScreen() *Screen {
	return &Screen{
		Title: "Not found",
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("404: that screen does not exist.\n")
			return RouteHome, nil
		},
	}
}
