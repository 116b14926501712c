package app

import (
	"context"

	"github.com/medichat/medichat-client/internal/media"
)

func foodAnalysisScreen() *Screen {
	return &Screen{
		Title:        "Food analysis",
		RequiresAuth: true,
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n--- Food analysis ---\n")
			path, ok := a.prompt("image file (JPEG/PNG/GIF), empty to go back: ")
			if !ok || path == "" {
				return RouteHome, nil
			}

			att, err := media.ReadFileAttachment(media.CategoryImage, path)
			if err != nil {
				return RouteFoodAnalysis, err
			}

			a.printf("Analyzing...\n")
			message, analysis, err := a.deps.Gateway.UploadImage(ctx, att)
			if err != nil {
				return RouteFoodAnalysis, err
			}

			a.printf("%s\n", renderMarkup(message))
			if analysis != "" {
				a.printf("%s\n", renderMarkup(analysis))
			}
			return RouteFoodAnalysis, nil
		},
	}
}
