package main

import "fmt"

type Protocol string

const (
	TCP Protocol = "tcp"
	UDP Protocol = "udp"
)

func main() {
	fmt.Println(port(TCP))
}

func port(p Protocol) int {
	switch p {
	case TCP:
		return 80
	case UDP:
		return 53
	default:
		return 0
	}
}
