// Command lightsout builds Lights Out search circuits from the command line.
//
//	lightsout build  -f batch.yaml            # OpenQASM 3 on stdout
//	lightsout build  -l 1000 -l 1111 --format summary
//	lightsout matrix --side 3                 # toggle matrix
//	lightsout solve  -l 100010001             # classical GF(2) reference
//
// A .env file in the working directory may set LIGHTSOUT_LOG_LEVEL.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lightsout:", err)
		os.Exit(1)
	}
}
