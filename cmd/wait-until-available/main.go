package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"
)

// Usage example on the command line:
// > go run main.go -url=http://localhost:8080/api/contacts -timeout=2m
func main() {
	url := flag.String("url", "http://localhost:8080/api/contacts", "the URL that must answer with 200")
	timeout := flag.Duration("timeout", 0, "give up after this duration, 0 waits forever")
	flag.Parse()

	totalWaitTime := 0
	for {
		res, err := http.Get(*url)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				fmt.Println(res.Status)
				return
			}
			fmt.Println(res.Status)
		} else {
			fmt.Println(err)
		}
		totalWaitTime += 5
		if *timeout > 0 && time.Duration(totalWaitTime)*time.Second > *timeout {
			fmt.Printf("Gave up after %d seconds", totalWaitTime)
			fmt.Println()
			panic("service not available")
		}
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
}
