// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/brano-hozza/meta-assetsd/account"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

type globalFlags struct {
	verbose  bool
	endpoint string
	seed     string
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "meta-assets-cli"
	app.Usage = "submit signed operations to a meta-assetsd node"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " verbose result",
			Destination: &globals.verbose,
		},
		cli.StringFlag{
			Name:        "endpoint, e",
			Value:       "http://127.0.0.1:2150",
			Usage:       " node HTTP endpoint",
			Destination: &globals.endpoint,
		},
		cli.StringFlag{
			Name:        "seed, s",
			Value:       "",
			Usage:       "*hex account seed used for signing",
			Destination: &globals.seed,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "generate",
			Usage: "generate a new account seed",
			Action: func(c *cli.Context) error {
				return runGenerate(c)
			},
		},
		{
			Name:  "account",
			Usage: "show the account for the supplied seed",
			Action: func(c *cli.Context) error {
				return runAccount(c, &globals)
			},
		},
		{
			Name:      "add",
			Usage:     "register an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Usage: "*asset name, over 3 and under 32 bytes",
				},
				cli.StringFlag{
					Name:  "metadata, m",
					Usage: " hex metadata for the creator's slot",
				},
			},
			Action: func(c *cli.Context) error {
				return runAdd(c, &globals)
			},
		},
		{
			Name:      "transfer",
			Usage:     "transfer an asset to a new owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Usage: "*asset identifier",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Usage: "*new owner account",
				},
			},
			Action: func(c *cli.Context) error {
				return runTransfer(c, &globals)
			},
		},
		{
			Name:      "meta",
			Usage:     "rewrite the caller's metadata slot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Usage: "*asset identifier",
				},
				cli.StringFlag{
					Name:  "metadata, m",
					Usage: " hex metadata, omit to clear the slot content",
				},
			},
			Action: func(c *cli.Context) error {
				return runMeta(c, &globals)
			},
		},
		{
			Name:      "admin",
			Usage:     "grant another account a metadata slot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Usage: "*asset identifier",
				},
				cli.StringFlag{
					Name:  "admin, d",
					Usage: "*account to grant",
				},
			},
			Action: func(c *cli.Context) error {
				return runAdmin(c, &globals)
			},
		},
		{
			Name:      "show",
			Usage:     "show an asset record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Usage: "*asset identifier",
				},
			},
			Action: func(c *cli.Context) error {
				return runShow(c, &globals)
			},
		},
		{
			Name:      "show-meta",
			Usage:     "show a metadata slot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Usage: "*asset identifier",
				},
				cli.StringFlag{
					Name:  "account, u",
					Usage: "*slot holder account",
				},
			},
			Action: func(c *cli.Context) error {
				return runShowMeta(c, &globals)
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("error: %s", err)
	}
}

func runGenerate(c *cli.Context) error {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); nil != err {
		return err
	}
	private, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		return err
	}
	fmt.Printf("seed:    %s\n", hex.EncodeToString(seed))
	fmt.Printf("account: %s\n", private.Account())
	return nil
}

func runAccount(c *cli.Context, globals *globalFlags) error {
	private, err := privateKey(globals)
	if nil != err {
		return err
	}
	fmt.Printf("account: %s\n", private.Account())
	return nil
}

func runAdd(c *cli.Context, globals *globalFlags) error {
	name := c.String("name")
	if "" == name {
		return fmt.Errorf("asset name is required")
	}

	body := map[string]interface{}{
		"name":     name,
		"metadata": metadataField(c),
	}
	return submit(globals, "POST", "/v1/assets", body)
}

func runTransfer(c *cli.Context, globals *globalFlags) error {
	assetId, err := assetIdField(c)
	if nil != err {
		return err
	}
	owner := c.String("owner")
	if "" == owner {
		return fmt.Errorf("new owner is required")
	}

	body := map[string]interface{}{
		"owner": owner,
	}
	return submit(globals, "POST", "/v1/assets/"+assetId+"/transfer", body)
}

func runMeta(c *cli.Context, globals *globalFlags) error {
	assetId, err := assetIdField(c)
	if nil != err {
		return err
	}

	body := map[string]interface{}{
		"metadata": metadataField(c),
	}
	return submit(globals, "PUT", "/v1/assets/"+assetId+"/metadata", body)
}

func runAdmin(c *cli.Context, globals *globalFlags) error {
	assetId, err := assetIdField(c)
	if nil != err {
		return err
	}
	admin := c.String("admin")
	if "" == admin {
		return fmt.Errorf("admin account is required")
	}

	body := map[string]interface{}{
		"admin": admin,
	}
	return submit(globals, "POST", "/v1/assets/"+assetId+"/admins", body)
}

func runShow(c *cli.Context, globals *globalFlags) error {
	assetId, err := assetIdField(c)
	if nil != err {
		return err
	}
	return submit(globals, "GET", "/v1/assets/"+assetId, nil)
}

func runShowMeta(c *cli.Context, globals *globalFlags) error {
	assetId, err := assetIdField(c)
	if nil != err {
		return err
	}
	holder := c.String("account")
	if "" == holder {
		return fmt.Errorf("slot holder account is required")
	}
	return submit(globals, "GET", "/v1/assets/"+assetId+"/metadata/"+holder, nil)
}

// an omitted metadata flag means a contentless slot value
func metadataField(c *cli.Context) interface{} {
	if !c.IsSet("metadata") {
		return nil
	}
	return c.String("metadata")
}

func assetIdField(c *cli.Context) (string, error) {
	assetId := c.String("asset")
	if "" == assetId {
		return "", fmt.Errorf("asset identifier is required")
	}
	return assetId, nil
}
