package main

import (
	"github.com/draftelite/onboarding-go/internal/cli"
)

func main() {
	cli.Execute()
}
