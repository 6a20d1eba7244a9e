/*
Package authsdk provides a client SDK for the notekeeper API.

# Overview

The package is organized around two types:

  - SDKClient: unauthenticated operations (register, login, renewal, logout, health)
  - Session: operations that need an access credential, with automatic renewal

Create an SDKClient and authenticate to obtain a Session:

	client := authsdk.NewSDKClient("http://localhost:5000")

	session, err := client.LoginSession(ctx, "alice@example.com", "hunter22")
	if err != nil {
		return err
	}

	id, err := session.Whoami(ctx)
	noteID, err := session.CreateNote(ctx, "remember the milk")

	// Revoke the renewal credential when done
	err = session.Logout(ctx)

# Automatic Renewal

Sessions read the exp claim of the access credential (without verifying it, the
client holds no secrets) and call POST /refresh_access_token 30 seconds before it
lapses. The renewal credential itself is never reissued by the server, so a
Session keeps the one it was created with until Logout.

# Error Handling

Non-2xx responses are returned as *APIError values carrying the HTTP status and the
error code written by the server:

	_, err := client.Login(ctx, email, password)
	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == authsdk.ErrorCodeUserNotFound {
		// register instead
	}

The same predefined errors (ErrUserExists, ErrInvalidToken, ...) are used by the
server to write its responses, so client and server agree on codes.

# Thread Safety

Sessions are safe for concurrent use.
*/
package authsdk
