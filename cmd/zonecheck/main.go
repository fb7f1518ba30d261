// Command zonecheck verifies that Route53 hosts a public zone for every base domain
// a website is declared under, before `cdk deploy` runs into the missing zone.
//
// Usage:
//
//	zonecheck                         Check every base domain in sites.toml
//	zonecheck --sites conf/sites.toml Check a different sites file
//	zonecheck example.com example.org Check the given domains
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(route53Client).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
