package main

import (
	"errors"
	"fmt"

	"github.com/lox/rockpaper/internal/commit"
	"github.com/lox/rockpaper/internal/display"
)

type VerifyCmd struct {
	Digest string `arg:"" help:"HMAC published before the round (hex)"`
	Key    string `arg:"" help:"Secret key revealed after the round (hex)"`
	Index  int    `arg:"" help:"Move index revealed after the round (0-based)"`
}

func (c *VerifyCmd) Run(g *Globals) error {
	if g.NoColor {
		display.DisableColor()
	}

	ok, err := commit.Verify(c.Digest, c.Key, c.Index)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(stdout, display.LoseStyle.Render("MISMATCH"))
		return errors.New("digest does not match the revealed key and move index")
	}
	fmt.Fprintln(stdout, display.WinStyle.Render("OK")+" digest matches key and move index "+fmt.Sprint(c.Index))
	return nil
}
