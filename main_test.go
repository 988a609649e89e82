package main

import (
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"
)

func TestServeDrainsInFlightRequests(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}

	started := make(chan struct{})
	release := make(chan struct{})
	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.Write([]byte("done"))
	})}

	stop := make(chan os.Signal, 1)
	served := make(chan error, 1)
	go func() { served <- serve(server, ln, stop, 5*time.Second) }()

	type result struct {
		body string
		err  error
	}
	responses := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			responses <- result{err: err}
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		responses <- result{body: string(body), err: err}
	}()

	<-started
	stop <- os.Interrupt

	// serve must keep waiting while the request is still running
	select {
	case err := <-served:
		t.Fatalf("serve returned before the request finished: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)

	res := <-responses
	if res.err != nil {
		t.Fatalf("In-flight request failed: %v", res.err)
	}
	if res.body != "done" {
		t.Errorf("Expected body 'done', got '%s'", res.body)
	}

	select {
	case err := <-served:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the request finished")
	}
}
