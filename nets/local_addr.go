package nets

import "net"

// IsLocalAddr reports whether addr only accepts connections from this
// machine or a private network. An empty host binds every interface.
type IsLocalAddr func(addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			// no port
			host = addr
		}
		if host == "" {
			return false, nil
		}

		ips := []net.IP{net.ParseIP(host)}
		if ips[0] == nil {
			ips, err = net.LookupIP(host)
			if err != nil {
				return false, nil
			}
		}
		for _, ip := range ips {
			if ip.IsUnspecified() {
				return false, nil
			}
			if !ip.IsLoopback() && !ip.IsPrivate() {
				return false, nil
			}
		}
		return len(ips) > 0, nil
	}
}
