//go:build !tinygo

package main

import (
	"bytes"
	"testing"

	"nucleo-uart/errcode"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		line string
		want command
	}{
		{"baud 9600", command{kind: cmdBaud, baud: 9600}},
		{`send "hello world"`, command{kind: cmdSend, data: []byte("hello world\r")}},
		{"send a b", command{kind: cmdSend, data: []byte("a b\r")}},
		{"send", command{kind: cmdSend, data: []byte("\r")}},
		{"hex 41 0x42 ff", command{kind: cmdHex, data: []byte{0x41, 0x42, 0xFF}}},
		{"quit", command{kind: cmdQuit}},
		{"  q  ", command{kind: cmdQuit}},
		{"?", command{kind: cmdHelp}},
	}
	for _, tc := range cases {
		got, err := parseCommand(tc.line)
		if err != nil {
			t.Errorf("%q: %v", tc.line, err)
			continue
		}
		if got.kind != tc.want.kind || got.baud != tc.want.baud || !bytes.Equal(got.data, tc.want.data) {
			t.Errorf("%q: got %+v, want %+v", tc.line, got, tc.want)
		}
	}
}

func TestParseCommand_Errors(t *testing.T) {
	cases := []struct {
		line string
		want errcode.Code
	}{
		{"", errcode.InvalidParams},
		{"baud", errcode.InvalidParams},
		{"baud 0", errcode.InvalidParams},
		{"baud fast", errcode.InvalidParams},
		{"hex", errcode.InvalidParams},
		{"hex 1ff", errcode.InvalidParams},
		{`send "unterminated`, errcode.InvalidPayload},
		{"reboot", errcode.Unsupported},
	}
	for _, tc := range cases {
		_, err := parseCommand(tc.line)
		if got := errcode.Of(err); got != tc.want {
			t.Errorf("%q: code = %q (%v), want %q", tc.line, got, err, tc.want)
		}
	}
}
