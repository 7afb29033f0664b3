//go:build windows

package statement

// LineSeparator terminates every statement line.
const LineSeparator = "\r\n"
