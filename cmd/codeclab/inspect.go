// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"cloudeng.io/errors"
	"github.com/corvid-labs/codeclab"
)

func inspectOne(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	name, ok := codeclab.DetectFormat(data)
	if !ok {
		if name != "" {
			fmt.Printf("%v: looks like a %v file, not a codeclab artifact\n", path, name)
			return nil
		}
		fmt.Printf("%v: unrecognized format\n", path)
		return nil
	}
	fmt.Printf("%v: %v artifact, %v bytes\n", path, name, len(data))
	return nil
}

func inspect(ctx context.Context, values interface{}, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		errs.Append(inspectOne(arg))
	}
	return errs.Err()
}
