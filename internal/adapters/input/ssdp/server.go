package ssdp

import (
	"context"
	"fmt"
	"net"
	"strings"

	"go.uber.org/zap"
)

const multicastAddr = "239.255.255.250:1900"

// Server answers SSDP M-SEARCH probes so Echo devices find the local bridge.
type Server struct {
	ip   string
	port int
	log  *zap.SugaredLogger
}

func NewServer(ip string, port int, log *zap.SugaredLogger) *Server {
	return &Server{ip: ip, port: port, log: log.With("module", "ssdp")}
}

// Start blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr, err := net.ResolveUDPAddr("udp4", multicastAddr)
	if err != nil {
		return err
	}

	conn, err := net.ListenMulticastUDP("udp4", nil, addr)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	buf := make([]byte, 1024)
	for {
		n, src, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			continue
		}

		if matchesSearch(string(buf[:n])) {
			s.log.Debugw("Answering M-SEARCH", "from", src.String())
			s.respond(src)
		}
	}
}

// Echo Dot 3 searches for the basic device type or the root device.
func matchesSearch(msg string) bool {
	if !strings.Contains(msg, "M-SEARCH") {
		return false
	}
	return strings.Contains(msg, "urn:schemas-upnp-org:device:basic:1") ||
		strings.Contains(msg, "upnp:rootdevice") ||
		strings.Contains(msg, "ssdp:all")
}

func (s *Server) respond(dest *net.UDPAddr) {
	conn, err := net.DialUDP("udp4", nil, dest)
	if err != nil {
		s.log.Warnw("SSDP reply failed", "to", dest.String(), "error", err)
		return
	}
	defer conn.Close()

	_, _ = conn.Write([]byte(s.searchResponse()))
}

func (s *Server) searchResponse() string {
	return fmt.Sprintf("HTTP/1.1 200 OK\r\n"+
		"CACHE-CONTROL: max-age=100\r\n"+
		"EXT:\r\n"+
		"LOCATION: http://%s:%d/description.xml\r\n"+
		"SERVER: FreeRTOS/6.0.5, UPnP/1.1, IpBridge/1.17.0\r\n"+
		"ST: urn:schemas-upnp-org:device:basic:1\r\n"+
		"USN: uuid:2f402f80-da50-11e1-9b23-001788102201::urn:schemas-upnp-org:device:basic:1\r\n\r\n", s.ip, s.port)
}
