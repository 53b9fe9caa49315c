// Command apicall performs a single ad-hoc API call through the SDK. It is a
// debugging aid: configuration comes from the environment, the call itself
// from flags, and the decoded response is printed as JSON.
//
// Example:
//
//	API_ENDPOINT=https://api.example.com \
//	AUTH_ENDPOINT=https://api.example.com/oauth2/token \
//	AUTH_CLIENT_KEY=key AUTH_CLIENT_SECRET=secret \
//	apicall -method GET -url /v3/properties
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/openvoyage/sdk-go/auth"
	"github.com/openvoyage/sdk-go/client"
	"github.com/openvoyage/sdk-go/config"
	"github.com/openvoyage/sdk-go/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	method := flag.String("method", http.MethodGet, "HTTP method")
	url := flag.String("url", "", "request URL, absolute or relative to API_ENDPOINT")
	body := flag.String("body", "", "raw JSON request body (optional)")
	flag.Parse()

	log := logger.NewLogger("apicall")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if *url == "" {
		log.Fatal().Msg("-url is required")
	}

	authClient, err := auth.NewBearerClient(cfg.Auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth client")
	}

	apiClient, err := client.New(cfg.API, authClient, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	var requestBody any
	if *body != "" {
		requestBody = json.RawMessage(*body)
	}

	result, err := apiClient.Call(context.Background(), *method, *url, requestBody, nil,
		[]client.ResponseShape{client.ShapeOf[map[string]any]()}, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("api call failed")
	}

	if result == nil {
		fmt.Println("(empty response)")
		return
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("encode response")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
