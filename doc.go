// Package tempmail provides disposable email addresses on the
// tuamaeaquelaursa.com domain and waits for messages delivered to them.
//
// A Mailbox is only an address: creating one reserves nothing on the server.
// Messages sent to the address land in a public message store, which
// WaitForMessage polls once per second until a message from the expected
// sender shows up or the timeout elapses.
//
// Basic usage:
//
//	mailbox, err := tempmail.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Send to:", mailbox.Email())
//
//	// Wait for a message whose sender contains "shop.example"
//	msg, err := mailbox.WaitForMessage(ctx, "shop.example")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Subject:", msg.Subject)
//
// Use WithHumanized(true) for addresses like "olivia-brave-otter@tuamaeaquelaursa.com".
package tempmail
