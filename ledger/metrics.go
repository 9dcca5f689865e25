// Copyright 2025 Rentledger Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ledgerMetrics struct {
	propertiesTotal    prometheus.Counter
	rentalsTotal       prometheus.Counter
	rentPaymentsTotal  prometheus.Counter
	inspectionsTotal   prometheus.Counter
	penaltiesPaidTotal prometheus.Counter
	terminationsTotal  prometheus.Counter
	roleChangesTotal   prometheus.Counter
	feeRateBps         prometheus.Gauge
	platformFeeUnits   prometheus.Counter
}

func (m *ledgerMetrics) init(promRegistry prometheus.Registerer) {
	promautoFactory := promauto.With(promRegistry)
	m.propertiesTotal = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_properties_added_total",
		Help: "total number of properties registered",
	})
	m.rentalsTotal = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_rentals_total",
		Help: "total number of rentals started",
	})
	m.rentPaymentsTotal = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_rent_payments_total",
		Help: "total number of rent payments settled",
	})
	m.inspectionsTotal = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_inspections_total",
		Help: "total number of move-out inspections completed",
	})
	m.penaltiesPaidTotal = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_penalties_paid_total",
		Help: "total number of penalties settled",
	})
	m.terminationsTotal = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_terminations_total",
		Help: "total number of rentals formally closed",
	})
	m.roleChangesTotal = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_role_changes_total",
		Help: "total number of role grants and revokes",
	})
	m.feeRateBps = promautoFactory.NewGauge(prometheus.GaugeOpts{
		Name: "rentledger_fee_rate_bps",
		Help: "current platform fee rate in basis points",
	})
	m.platformFeeUnits = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_platform_fee_units_total",
		Help: "total platform fees collected in smallest token units",
	})
}
