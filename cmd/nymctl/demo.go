package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"time"

	"github.com/anupsv/nym/channel"
	"github.com/anupsv/nym/keys"
	"github.com/anupsv/nym/nym"
)

func cmdDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	timeout := fs.Duration("timeout", 5*time.Second, "timeout for the whole demo run")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	userSK, err := keys.NewUserSecretKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate user key: %w", err)
	}
	org1SK, err := keys.NewOrgSecretKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate org1 key: %w", err)
	}
	org2SK, err := keys.NewOrgSecretKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate org2 key: %w", err)
	}

	user := nym.NewUser(userSK)
	org1 := nym.NewOrg(org1SK)
	org2 := nym.NewOrg(org2SK)

	fmt.Println("generating pseudonym with org1...")
	userNym, err := runGenerateNym(ctx, user, org1)
	if err != nil {
		return fmt.Errorf("generate nym: %w", err)
	}
	fmt.Println("  ok")

	fmt.Println("authenticating as nym holder...")
	if err := runAuthenticateNym(ctx, user, org1, userNym); err != nil {
		return fmt.Errorf("authenticate nym: %w", err)
	}
	fmt.Println("  ok")

	fmt.Println("issuing credential from org1...")
	cred, err := runIssueCredential(ctx, user, org1, userNym)
	if err != nil {
		return fmt.Errorf("issue credential: %w", err)
	}
	fmt.Println("  ok")

	fmt.Println("registering a second pseudonym with org2...")
	secondNym, err := runGenerateNym(ctx, user, org2)
	if err != nil {
		return fmt.Errorf("generate second nym: %w", err)
	}
	fmt.Println("  ok")

	fmt.Println("transferring credential to org2...")
	if err := runTransferCredential(ctx, user, org2, secondNym, cred, org1.PublicKey()); err != nil {
		return fmt.Errorf("transfer credential: %w", err)
	}
	fmt.Println("  ok")

	sig, err := nym.Sign(userNym, userSK.Exponent(), []byte("nymctl demo message"))
	if err != nil {
		return fmt.Errorf("sign with nym: %w", err)
	}
	if err := nym.Verify(userNym, []byte("nymctl demo message"), sig); err != nil {
		return fmt.Errorf("verify nym signature: %w", err)
	}
	fmt.Println("nym-signature round trip: ok")

	fmt.Println("demo completed successfully")
	return nil
}

func runGenerateNym(ctx context.Context, user nym.User, org nym.Org) (nym.Nym, error) {
	uCh, oCh := channel.Pair()
	defer uCh.Close()
	defer oCh.Close()

	type result struct {
		n   nym.Nym
		err error
	}
	userResult := make(chan result, 1)
	go func() {
		n, err := user.GenerateNym(ctx, uCh)
		userResult <- result{n, err}
	}()

	if _, err := org.GenerateNym(ctx, oCh); err != nil {
		return nym.Nym{}, err
	}
	r := <-userResult
	return r.n, r.err
}

func runAuthenticateNym(ctx context.Context, user nym.User, org nym.Org, n nym.Nym) error {
	uCh, oCh := channel.Pair()
	defer uCh.Close()
	defer oCh.Close()

	errc := make(chan error, 1)
	go func() { errc <- user.AuthenticateNym(ctx, uCh, n) }()

	if err := org.AuthenticateNym(ctx, oCh, n); err != nil {
		return err
	}
	return <-errc
}

func runIssueCredential(ctx context.Context, user nym.User, org nym.Org, n nym.Nym) (nym.Cred, error) {
	uCh, oCh := channel.Pair()
	defer uCh.Close()
	defer oCh.Close()

	type result struct {
		cred nym.Cred
		err  error
	}
	userResult := make(chan result, 1)
	go func() {
		c, err := user.IssueCredential(ctx, uCh, n, org.PublicKey())
		userResult <- result{c, err}
	}()

	if err := org.IssueCredential(ctx, oCh, n); err != nil {
		return nym.Cred{}, err
	}
	r := <-userResult
	return r.cred, r.err
}

func runTransferCredential(ctx context.Context, user nym.User, destOrg nym.Org, destNym nym.Nym, cred nym.Cred, sourceKey keys.OrgPublicKey) error {
	uCh, oCh := channel.Pair()
	defer uCh.Close()
	defer oCh.Close()

	errc := make(chan error, 1)
	go func() { errc <- user.TransferCredential(ctx, uCh, destNym, cred) }()

	if err := destOrg.TransferCredential(ctx, oCh, destNym, cred, sourceKey); err != nil {
		return err
	}
	return <-errc
}
