/*
Package vitaransdk provides a Go client for the Vitaran subscription server.

# Overview

Every endpoint takes and returns JSON. Sessions are plain bearer tokens that
travel in the request body, so the client keeps no state of its own: callers
hold on to the token returned by Login and pass it back in.

	client := vitaransdk.NewClient("http://localhost:3000")

	err := client.Register(ctx, vitaransdk.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Password: "secret1",
	})

	token, err := client.Login(ctx, "asha@example.com", "secret1")

	err = client.SavePlan(ctx, token, "QUICK")

	order, err := client.CreateOrder(ctx, token, 499)

# Errors

Validation and credential failures come back as *APIError carrying the
message the server would show a user. Token-gated calls that are rejected
without a message return ErrUnauthorized. Non-2xx answers, which the server
only sends for internal failures, are reported as *StatusError.

	if err := client.Register(ctx, req); err != nil {
		var apiErr *vitaransdk.APIError
		if errors.As(err, &apiErr) {
			fmt.Println(apiErr.Message) // "User already exists"
		}
	}

# Dashboard

LoadDashboard mirrors the browser dashboard. It resolves the session, then
renders a feed locally for the user's plan. The Outcome says where a front end
should go next:

	res := client.LoadDashboardWithReload(ctx, token)
	switch res.Outcome {
	case vitaransdk.OutcomeReady:
		render(res.Profile, res.Feed)
	case vitaransdk.OutcomeNoToken, vitaransdk.OutcomeUnauthorized, vitaransdk.OutcomeNoPlan:
		redirect(res.Outcome.RedirectPage())
	}

Feed asks the server to render the feed instead, for clients that cannot run
the generator themselves.

# Health Checks

	health, err := client.GetLiveness(ctx)
	fmt.Printf("Status: %s, Uptime: %s\n", health.Status, health.Uptime)

	readiness, err := client.GetReadiness(ctx)
	if readiness.Checks != nil {
		fmt.Printf("Database: %s\n", readiness.Checks.Database)
	}
*/
package vitaransdk
