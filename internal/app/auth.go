package app

import (
	"context"

	apperrors "github.com/medichat/medichat-client/internal/errors"
)

func signupScreen() *Screen {
	return &Screen{
		Title: "Sign up",
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n--- Sign up ---\n")
			username, ok := a.prompt("username: ")
			if !ok {
				return RouteHome, nil
			}
			email, ok := a.prompt("email: ")
			if !ok {
				return RouteHome, nil
			}
			password, err := a.input.Password("password: ")
			if err != nil {
				return RouteHome, nil
			}
			confirm, err := a.input.Password("confirm password: ")
			if err != nil {
				return RouteHome, nil
			}

			if password != confirm {
				return RouteSignup, apperrors.NewValidationError("Passwords do not match")
			}

			user, token, err := a.deps.Gateway.Signup(ctx, username, email, password, confirm)
			if err != nil {
				return RouteSignup, err
			}
			if err := a.deps.Sessions.Login(user, token); err != nil {
				return RouteSignup, err
			}

			a.printf("Welcome, %s!\n", user.Username)
			return RouteProfileSetup, nil
		},
	}
}

func loginScreen() *Screen {
	return &Screen{
		Title: "Log in",
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n--- Log in ---\n")
			email, ok := a.prompt("email: ")
			if !ok {
				return RouteHome, nil
			}
			password, err := a.input.Password("password: ")
			if err != nil {
				return RouteHome, nil
			}

			user, token, err := a.deps.Gateway.Login(ctx, email, password)
			if err != nil {
				return RouteLogin, err
			}
			if err := a.deps.Sessions.Login(user, token); err != nil {
				return RouteLogin, err
			}

			a.printf("Welcome back, %s!\n", user.Username)
			return RouteHome, nil
		},
	}
}

func adminLoginScreen() *Screen {
	return &Screen{
		Title: "Admin login",
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n--- Admin login ---\n")
			email, ok := a.prompt("admin email: ")
			if !ok {
				return RouteHome, nil
			}
			password, err := a.input.Password("password: ")
			if err != nil {
				return RouteHome, nil
			}

			token, isAdmin, err := a.deps.Gateway.AdminLogin(ctx, email, password)
			if err != nil {
				return RouteAdminLogin, err
			}
			if !isAdmin {
				return RouteAdminLogin, apperrors.NewPermissionError("Invalid admin credentials")
			}
			if err := a.deps.Sessions.LoginAdmin(token); err != nil {
				return RouteAdminLogin, err
			}

			a.printf("Admin session started.\n")
			return RouteAdminDashboard, nil
		},
	}
}
