/*
Package banksdk provides a client SDK for the card bank service and the wire
types shared with the server.

# Client vs Session

  - Client: unauthenticated operations (health, register, login)
  - Session: bearer-authenticated operations created by Client.Login

	client := banksdk.NewClient("https://bank.example.com")

	session, err := client.Login(ctx, "alice@example.com", password)
	if err != nil {
		return err
	}

	card, err := session.CreateCard(ctx, banksdk.CreateCardRequest{HolderName: "Alice Example"})
	cards, err := session.ListCards(ctx)

Card numbers are only ever returned masked ("1234******5678").

# Errors

JSON errors are returned as *APIError. The authentication gate answers with
plain text bodies; those are mapped to ErrUnauthenticated (401) and
ErrAccountLocked or ErrForbidden (403):

	var apiErr *banksdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		// log in again
	}

Sessions do not refresh. Tokens carry a fixed lifetime and there is no
revocation, so a Session whose token expired must be replaced by a new
Login.
*/
package banksdk
