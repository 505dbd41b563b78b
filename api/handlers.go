package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/date"
)

// badRequest is a parameter error, answered with 400.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"status": "ok"}
	if snap := s.store.Current(); snap != nil {
		resp["snapshot"] = snap.ID()
		resp["transactions"] = snap.Len()
		resp["rejected"] = len(snap.Rejected())
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleKPI(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot) {
	rng, err := s.rangeParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, snap.KPI(rng))
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot) {
	month, err := s.dayParam(r, "month")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	months := s.trendMonths
	if v := r.URL.Query().Get("months"); v != "" {
		months, err = strconv.Atoi(v)
		if err != nil || months < 1 || months > ledgerdash.MaxTrendMonths {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid months %q: want an integer from 1 to %d", v, ledgerdash.MaxTrendMonths))
			return
		}
	}
	writeJSON(w, r, http.StatusOK, snap.Trend(months, month))
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot) {
	rng, err := s.rangeParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	switch mode := r.URL.Query().Get("mode"); mode {
	case "", "activity":
		writeJSON(w, r, http.StatusOK, snap.ActivityTrend(rng))
	case "series":
		writeJSON(w, r, http.StatusOK, snap.DailySeries(rng))
	default:
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid mode %q: want activity or series", mode))
	}
}

func (s *Server) handleFlow(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot) {
	rng, err := s.rangeParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, snap.Flow(rng))
}

func (s *Server) handleTreemap(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot) {
	month, err := s.dayParam(r, "month")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, snap.Treemap(month, s.now()))
}

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot) {
	if r.URL.Query().Has("period") {
		s.handleBalanceHistory(w, r, snap)
		return
	}
	on, err := s.dayParam(r, "on")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if account := r.URL.Query().Get("account"); account != "" {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"account": account,
			"on":      on,
			"balance": snap.BookBalance(account, on),
		})
		return
	}
	writeJSON(w, r, http.StatusOK, snap.BalancesAsOf(on))
}

// handleBalanceHistory answers the balances of every period from "from"
// (the first transaction by default) to "to", for each "account".
func (s *Server) handleBalanceHistory(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot) {
	q := r.URL.Query()
	p, err := date.ParsePeriod(q.Get("period"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid period %q: want day, week, month, quarter or year", q.Get("period")))
		return
	}
	to, err := s.dayParam(r, "to")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	from := to
	if first, ok := snap.FirstDate(); ok {
		from = first
	}
	if q.Get("from") != "" {
		if from, err = s.dayParam(r, "from"); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}
	delta := false
	if v := q.Get("delta"); v != "" {
		if delta, err = strconv.ParseBool(v); err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid delta %q: want a boolean", v))
			return
		}
	}
	points, err := snap.BalanceHistory(q["account"], date.NewRange(from, to), p, delta)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, points)
}

func (s *Server) handleTransfers(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot) {
	rng, err := s.rangeParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, snap.Transfers(rng))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot) {
	month, err := s.dayParam(r, "month")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, s.dashboard(snap, month))
}

type rejection struct {
	Index int    `json:"index"`
	Payee string `json:"payee"`
	Date  string `json:"date"`
	Error string `json:"error"`
}

func (s *Server) handleErrors(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot) {
	resp := []rejection{}
	for _, e := range snap.Rejected() {
		resp = append(resp, rejection{Index: e.Index, Payee: e.Payee, Date: e.Date, Error: e.Err.Error()})
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleUnreconciled(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot) {
	txs := snap.Unreconciled()
	if txs == nil {
		txs = []ledgerdash.Transaction{}
	}
	writeJSON(w, r, http.StatusOK, txs)
}

// dayParam parses the query parameter name as a date flag, today if absent.
func (s *Server) dayParam(r *http.Request, name string) (date.Date, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return s.now(), nil
	}
	d, err := date.ParseFlag(v)
	if err != nil {
		return date.Date{}, badRequest{fmt.Sprintf("invalid %s %q: %v", name, v, err)}
	}
	return d, nil
}

// rangeParam reads either "from" and "to", or the month of "month".
func (s *Server) rangeParam(r *http.Request) (date.Range, error) {
	q := r.URL.Query()
	if q.Get("from") == "" && q.Get("to") == "" {
		month, err := s.dayParam(r, "month")
		if err != nil {
			return date.Range{}, err
		}
		return date.Month(month), nil
	}
	if q.Get("month") != "" {
		return date.Range{}, badRequest{"month cannot be combined with from and to"}
	}
	from, err := s.dayParam(r, "from")
	if err != nil {
		return date.Range{}, err
	}
	to, err := s.dayParam(r, "to")
	if err != nil {
		return date.Range{}, err
	}
	return date.NewRange(from, to), nil
}
