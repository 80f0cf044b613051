package client

// ClientScoped is any record owned by a client.
type ClientScoped interface {
	ClientRef() int
}

// ResolveClientName returns the name of the client owning e, or UnknownLabel
// when the reference does not resolve against clients.
func ResolveClientName(e ClientScoped, clients []Client) string {
	id := e.ClientRef()
	for _, c := range clients {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownLabel
}

// ResolvePurchaseLabel returns the label of the purchase a payment belongs to.
func ResolvePurchaseLabel(p Payment, purchases []Purchase) string {
	for _, pu := range purchases {
		if pu.ID == p.PurchaseID {
			return pu.Label
		}
	}
	return UnknownLabel
}

// JoinPurchases attaches client names to purchases. It must be called again
// whenever either input changes; nothing is cached.
func JoinPurchases(purchases []Purchase, clients []Client) []JoinedPurchase {
	names := clientNames(clients)

	out := make([]JoinedPurchase, len(purchases))
	for i, p := range purchases {
		out[i] = JoinedPurchase{
			Purchase:   p,
			ClientName: lookup(names, p.ClientID),
		}
	}
	return out
}

// JoinPayments attaches client names and purchase labels to payments.
func JoinPayments(payments []Payment, clients []Client, purchases []Purchase) []JoinedPayment {
	names := clientNames(clients)
	labels := make(map[int]string, len(purchases))
	for _, p := range purchases {
		if _, dup := labels[p.ID]; !dup {
			labels[p.ID] = p.Label
		}
	}

	out := make([]JoinedPayment, len(payments))
	for i, p := range payments {
		out[i] = JoinedPayment{
			Payment:       p,
			ClientName:    lookup(names, p.ClientID),
			PurchaseLabel: lookup(labels, p.PurchaseID),
		}
	}
	return out
}

func clientNames(clients []Client) map[int]string {
	names := make(map[int]string, len(clients))
	for _, c := range clients {
		if _, dup := names[c.ID]; !dup {
			names[c.ID] = c.Name
		}
	}
	return names
}

func lookup(m map[int]string, id int) string {
	if v, ok := m[id]; ok {
		return v
	}
	return UnknownLabel
}
