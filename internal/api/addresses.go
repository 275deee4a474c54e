package api

import (
	"bookstore/internal/address"
	"bookstore/internal/model"
	"bookstore/internal/seed"
	"bookstore/internal/store"
	"bookstore/internal/utils"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) addressRoutes(r chi.Router) {
	r.Get("/", h.listAddresses)
	r.Post("/", h.createAddress)
	r.Route("/{id}", func(r chi.Router) {
		r.Put("/", h.updateAddress)
		r.Delete("/", h.deleteAddress)
		r.Put("/default", h.setDefaultAddress)
	})
}

type addressesResponse struct {
	Addresses        []model.Address `json:"addresses"`
	DefaultAddressID *string         `json:"defaultAddressId"`
	Selected         *model.Address  `json:"selectedDeliveryAddress"`
}

func addressesView(s store.State) addressesResponse {
	u := signedIn(s)
	addrs := u.Addresses
	if addrs == nil {
		addrs = []model.Address{}
	}
	return addressesResponse{
		Addresses:        addrs,
		DefaultAddressID: u.DefaultAddressID,
		Selected:         s.SelectedDeliveryAddress,
	}
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, addressesView(st.State()))
}

// readAddressForm decodes and validates the form, answering 422 with per-field messages.
func (h *Handler) readAddressForm(w http.ResponseWriter, r *http.Request) (address.Form, bool) {
	var form address.Form
	if !decode(w, r, &form) {
		return form, false
	}
	if errs := address.Validate(form, h.seed.Countries()); len(errs) > 0 {
		utils.WriteFieldErrors(w, address.ErrInvalidAddressForm.Error(), errs)
		return form, false
	}
	return form, true
}

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	form, ok := h.readAddressForm(w, r)
	if !ok {
		return
	}

	addr := form.ToAddress(nil)
	s := st.Dispatch(r.Context(), store.AddAddress{Address: addr})
	writeJSON(w, http.StatusCreated, addressesView(s))
}

func (h *Handler) findAddress(w http.ResponseWriter, r *http.Request, s store.State) (model.Address, bool) {
	id := chi.URLParam(r, "id")
	addr, ok := signedIn(s).FindAddress(id)
	if !ok {
		writeError(r.Context(), w, fmt.Errorf("%w: %s", address.ErrAddressNotFound, id))
	}
	return addr, ok
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	existing, ok := h.findAddress(w, r, st.State())
	if !ok {
		return
	}
	form, ok := h.readAddressForm(w, r)
	if !ok {
		return
	}

	s := st.Dispatch(r.Context(), store.UpdateAddress{Address: form.ToAddress(&existing)})
	writeJSON(w, http.StatusOK, addressesView(s))
}

// deleteAddress refuses to remove the user's only address.
func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	s := st.State()
	addr, ok := h.findAddress(w, r, s)
	if !ok {
		return
	}
	if len(signedIn(s).Addresses) <= 1 {
		writeError(r.Context(), w, address.ErrLastAddress)
		return
	}

	s = st.Dispatch(r.Context(), store.DeleteAddress{AddressID: addr.ID})
	writeJSON(w, http.StatusOK, addressesView(s))
}

func (h *Handler) setDefaultAddress(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	addr, ok := h.findAddress(w, r, st.State())
	if !ok {
		return
	}
	s := st.Dispatch(r.Context(), store.SetDefaultAddress{AddressID: addr.ID})
	writeJSON(w, http.StatusOK, addressesView(s))
}

type deliveryAddressRequest struct {
	AddressID string `json:"addressId"`
}

func (h *Handler) setDeliveryAddress(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	var req deliveryAddressRequest
	if !decode(w, r, &req) {
		return
	}

	addr, found := signedIn(st.State()).FindAddress(req.AddressID)
	if !found {
		writeError(r.Context(), w, fmt.Errorf("%w: %s", address.ErrAddressNotFound, req.AddressID))
		return
	}
	s := st.Dispatch(r.Context(), store.SetDeliveryAddress{Address: addr})
	writeJSON(w, http.StatusOK, addressesView(s))
}

func (h *Handler) listCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.seed.Countries())
}

type statesResponse struct {
	States          []seed.State `json:"states"`
	StateLabel      string       `json:"stateLabel"`
	PostalCodeLabel string       `json:"postalCodeLabel"`
}

func (h *Handler) listStates(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	states, ok := h.seed.StatesByCountry(code)
	if !ok {
		writeError(r.Context(), w, fmt.Errorf("country %q: %w", code, errNotFound))
		return
	}
	writeJSON(w, http.StatusOK, statesResponse{
		States:          states,
		StateLabel:      address.StateLabel(code),
		PostalCodeLabel: address.PostalCodeLabel(code),
	})
}
