package gateway

import "github.com/rentease/ms-go-rent-payments/app/entity"

type Registry struct {
	gateways map[entity.Gateway]Gateway
}

func NewRegistry(gateways ...Gateway) *Registry {
	items := make(map[entity.Gateway]Gateway, len(gateways))
	for _, g := range gateways {
		items[g.Code()] = g
	}
	return &Registry{gateways: items}
}

func (r *Registry) Get(code entity.Gateway) (Gateway, error) {
	g, ok := r.gateways[code]
	if !ok {
		return nil, ErrGatewayNotSupported
	}
	return g, nil
}
