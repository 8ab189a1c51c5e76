package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/nsaralegui/clavero/internal/protocol"
)

// The protocol serves one command per connection, so every command here
// dials a fresh connection.
func main() {
	addr := flag.String("addr", "127.0.0.1:5000", "server address")
	flag.Parse()

	if flag.NArg() > 0 {
		if err := run(*addr, strings.Join(flag.Args(), " ")); err != nil {
			fmt.Fprintf(os.Stderr, "clavero-cli: %v\n", err)
			os.Exit(1)
		}
		return
	}

	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := in.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "QUIT") || strings.EqualFold(line, "EXIT") {
			return
		}
		if err := run(*addr, line); err != nil {
			fmt.Fprintf(os.Stderr, "clavero-cli: %v\n", err)
		}
	}
}

func run(addr, command string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(command + "\n")); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
	}

	resp, err := protocol.ReadResponse(conn)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	printResponse(resp)
	return nil
}

func printResponse(resp protocol.Response) {
	switch resp.Kind {
	case protocol.KindOK:
		fmt.Println("OK")
	case protocol.KindNotFound:
		fmt.Println("NOTFOUND")
	case protocol.KindValue:
		fmt.Println(string(resp.Value))
	default:
		fmt.Println("ERROR:", resp.Err)
	}
}
