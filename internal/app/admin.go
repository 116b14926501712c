package app

import (
	"context"
	"strings"

	apperrors "github.com/medichat/medichat-client/internal/errors"
	"github.com/medichat/medichat-client/internal/media"
)

func adminDashboardScreen() *Screen {
	return &Screen{
		Title:         "Admin dashboard",
		RequiresAuth:  true,
		RequiresAdmin: true,
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n--- Admin dashboard ---\n")
			a.printf("Upload a PDF into a document collection.\n")

			path, ok := a.prompt("PDF file, empty to go back: ")
			if !ok || path == "" {
				return RouteHome, nil
			}

			collection, _ := a.prompt("collection (Admin/food_analyse) [Admin]: ")
			collection = strings.TrimSpace(collection)
			if collection == "" {
				collection = "Admin"
			}
			if collection != "Admin" && collection != "food_analyse" {
				return RouteAdminDashboard, apperrors.NewValidationError(`Invalid collection. Use "Admin" or "food_analyse"`)
			}

			att, err := media.ReadFileAttachment(media.CategoryPDF, path)
			if err != nil {
				return RouteAdminDashboard, err
			}

			a.printf("Uploading...\n")
			msg, err := a.deps.Gateway.UploadAdminPDF(ctx, att, collection)
			if err != nil {
				return RouteAdminDashboard, err
			}

			a.printf("%s\n", msg)
			return RouteAdminDashboard, nil
		},
	}
}
