//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sys/unix"
)

type termSize struct {
	WSRow, WSCol       uint
	WSXPixel, WSYPixel uint
}

var kittyWindowReply = regexp.MustCompile(`\[4;(\d+);(\d+)t`)

// queryKittyPixels asks kitty for the window size in pixels with CSI 14 t.
// The reply looks like <ESC>[4;<height>;<width>t.
func queryKittyPixels(f *os.File) (width, height int, ok bool) {
	state, err := terminal.MakeRaw(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}
	defer terminal.Restore(int(f.Fd()), state)

	fmt.Fprintf(f, "\033[14t")
	reader := bufio.NewReader(f)
	if b, err := reader.ReadByte(); err != nil || b != 033 {
		return 0, 0, false
	}
	s, err := reader.ReadString('t')
	if err != nil {
		return 0, 0, false
	}
	m := kittyWindowReply.FindStringSubmatch(s)
	if len(m) != 3 {
		return 0, 0, false
	}
	height, errH := strconv.Atoi(m[1])
	width, errW := strconv.Atoi(m[2])
	if errH != nil || errW != nil {
		return 0, 0, false
	}
	return width, height, true
}

func getTermSize() (termSize, error) {
	f, err := os.OpenFile("/dev/tty", unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_RDWR, 0666)
	if err == nil {
		defer f.Close()
		sz, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
		if err == nil {
			ts := termSize{WSRow: uint(sz.Row), WSCol: uint(sz.Col), WSXPixel: uint(sz.Xpixel), WSYPixel: uint(sz.Ypixel)}
			if ts.WSXPixel == 0 && ts.WSYPixel == 0 && os.Getenv("TERM") == "xterm-kitty" {
				if w, h, ok := queryKittyPixels(f); ok {
					ts.WSXPixel, ts.WSYPixel = uint(w), uint(h)
				}
			}
			return ts, nil
		}
	}
	w, h, err := terminal.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		return termSize{}, err
	}
	return termSize{WSRow: uint(h), WSCol: uint(w)}, nil
}
