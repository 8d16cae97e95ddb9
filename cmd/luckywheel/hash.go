package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"lucky_wheel/pkg/pass"
)

// hashPassword prints an .env line carrying the bcrypt hash of the operator
// password. The value is single-quoted so godotenv does not expand the $
// signs of the hash.
func hashPassword(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("hash-password", flag.ContinueOnError)
	fs.SetOutput(out)
	password := fs.String("password", "", "password to hash, read from stdin when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pw := *password
	if pw == "" {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}
	if pw == "" {
		return errors.New("empty password")
	}

	hash, err := pass.HashPassword(pw)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = fmt.Fprintf(out, "OPERATOR_PASSWORD_HASH='%s'\n", hash)
	return err
}
