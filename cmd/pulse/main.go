package main

import (
	"context"

	"github.com/faizmokh/pulse/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
