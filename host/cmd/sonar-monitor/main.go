package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/google/shlex"

	"sonar/host/monitor"
	"sonar/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Connecting to rangefinder on %s...\n", *device)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	mon := monitor.New()

	// Stream status lines in the background while the console runs.
	go func() {
		if err := mon.Run(port, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: serial read: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Serial stream closed.")
		os.Exit(0)
	}()

	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	var logFile *os.File
	defer func() {
		if logFile != nil {
			logFile.Close()
		}
	}()

	for scanner.Scan() {
		// shlex handles quoted arguments, e.g. log "range log.txt"
		parts, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return

		case "help", "?":
			printHelp()

		case "stats":
			fmt.Println(mon.Stats())

		case "reset":
			mon.Reset()
			fmt.Println("Statistics cleared.")

		case "log":
			if len(parts) != 2 {
				fmt.Println("Usage: log <path>  (or 'log off')")
				continue
			}
			if logFile != nil {
				mon.SetLog(nil)
				logFile.Close()
				logFile = nil
			}
			if parts[1] == "off" {
				fmt.Println("Logging disabled.")
				continue
			}
			f, err := os.Create(parts[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			logFile = f
			mon.SetLog(f)
			fmt.Printf("Logging to %s\n", parts[1])

		default:
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", parts[0])
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  help           - Show this help message")
	fmt.Println("  stats          - Print measurement statistics")
	fmt.Println("  reset          - Clear measurement statistics")
	fmt.Println("  log <path>     - Mirror status lines to a file ('log off' to stop)")
	fmt.Println("  quit/exit/q    - Exit the program")
	fmt.Println()
}
