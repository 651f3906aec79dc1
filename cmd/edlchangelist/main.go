// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package main

import (
	"os"

	"github.com/mrjoshuak/cmx3600-changelist/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
