//go:build !tinygo

package main

import (
	"strconv"
	"strings"

	"nucleo-uart/errcode"

	"github.com/google/shlex"
)

type cmdKind uint8

const (
	cmdBaud cmdKind = iota + 1
	cmdSend
	cmdHex
	cmdQuit
	cmdHelp
)

type command struct {
	kind cmdKind
	baud uint32
	data []byte
}

const usage = `commands:
  baud N          reopen the port at N baud
  send TEXT...    send TEXT followed by CR (quote to keep spaces)
  hex XX [XX...]  send raw bytes given in hex
  help            this text
  quit            leave the terminal`

// parseCommand splits line shell-style and maps it to a command.
func parseCommand(line string) (command, error) {
	const op = "uartterm.command"
	args, err := shlex.Split(line)
	if err != nil {
		return command{}, errcode.Wrap(errcode.InvalidPayload, op, err)
	}
	if len(args) == 0 {
		return command{}, errcode.New(errcode.InvalidParams, op, "empty command")
	}
	switch args[0] {
	case "baud":
		if len(args) != 2 {
			return command{}, errcode.New(errcode.InvalidParams, op, "usage: baud N")
		}
		n, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil || n == 0 {
			return command{}, errcode.New(errcode.InvalidParams, op, "bad baud rate: "+args[1])
		}
		return command{kind: cmdBaud, baud: uint32(n)}, nil
	case "send":
		return command{kind: cmdSend, data: []byte(strings.Join(args[1:], " ") + "\r")}, nil
	case "hex":
		if len(args) < 2 {
			return command{}, errcode.New(errcode.InvalidParams, op, "usage: hex XX [XX...]")
		}
		data := make([]byte, 0, len(args)-1)
		for _, a := range args[1:] {
			v, err := strconv.ParseUint(strings.TrimPrefix(a, "0x"), 16, 8)
			if err != nil {
				return command{}, errcode.New(errcode.InvalidParams, op, "bad hex byte: "+a)
			}
			data = append(data, byte(v))
		}
		return command{kind: cmdHex, data: data}, nil
	case "quit", "q":
		return command{kind: cmdQuit}, nil
	case "help", "?":
		return command{kind: cmdHelp}, nil
	}
	return command{}, errcode.New(errcode.Unsupported, op, "unknown command: "+args[0])
}
