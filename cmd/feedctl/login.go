package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/delivery/stub"

	"github.com/pkg/errors"
)

func runLogin(ctx context.Context, user string) error {
	env, err := newCLIEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	token, err := requestToken(ctx, env.cfg.Upstream.BaseURL, user)
	if err != nil {
		return err
	}

	if err := env.accessor.SaveToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	fmt.Printf("Logged in as %s\n", user)

	return nil
}

func requestToken(ctx context.Context, baseURL, user string) (string, error) {
	body, err := json.Marshal(stub.TokenRequest{User: user})
	if err != nil {
		return "", errors.WithStack(err)
	}

	url := strings.TrimRight(baseURL, "/") + "/auth/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("token request failed with status %d", resp.StatusCode)
	}

	var out stub.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	return out.Token, nil
}
