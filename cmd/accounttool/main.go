// Command accounttool is a small offline maintenance utility: given a
// user_id and a deployment secret (e.g. from an environment variable), it
// prints the web_auth_token that config.DeriveWebAuthToken would assign,
// for an operator re-salting a leaked token without touching a running
// server's in-memory account store.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/sadroeck/heimdall-go/internal/config"
)

func main() {
	userID := flag.String("user", "", "account user_id to derive a token for")
	secret := flag.String("secret", "", "deployment secret (defaults to $HEIMDALL_TOKEN_SECRET)")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: accounttool -user <user_id> [-secret <secret>]")
		os.Exit(2)
	}
	if *secret == "" {
		*secret = os.Getenv("HEIMDALL_TOKEN_SECRET")
	}
	if *secret == "" {
		fmt.Fprintln(os.Stderr, "accounttool: no secret given and HEIMDALL_TOKEN_SECRET is unset")
		os.Exit(2)
	}

	token := config.DeriveWebAuthToken(*userID, []byte(*secret))
	fmt.Println(hex.EncodeToString(token[:]))
}
