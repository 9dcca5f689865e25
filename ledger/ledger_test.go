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

package ledger_test

import (
	"testing"

	"github.com/rentledger-io/rentledger/database"
	"github.com/rentledger-io/rentledger/event"
	"github.com/rentledger-io/rentledger/ledger"
	"github.com/rentledger-io/rentledger/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdmin    = ledger.Identity("admin")
	testLandlord = ledger.Identity("landlord-1")
	testTenant   = ledger.Identity("tenant-1")
	testInspect  = ledger.Identity("inspector-1")
	testPlatform = ledger.Identity("platform")
)

type testEnv struct {
	db       *database.Database
	eventBus *event.EventBus
	tokens   *token.Ledger
	ledger   *ledger.Ledger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.New(&database.Config{
		Logger:  nil,
		DataDir: "",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})
	eb := event.NewEventBus(nil, nil)
	tokens, err := token.NewLedger(token.Config{
		EventBus: eb,
		Database: db,
		Owner:    string(testPlatform),
	})
	require.NoError(t, err)
	l, err := ledger.New(ledger.Config{
		EventBus:        eb,
		Database:        db,
		Tokens:          tokens,
		PlatformAccount: testPlatform,
	})
	require.NoError(t, err)
	require.NoError(
		t,
		l.Bootstrap([]ledger.Identity{testAdmin}, 1000),
	)
	return &testEnv{
		db:       db,
		eventBus: eb,
		tokens:   tokens,
		ledger:   l,
	}
}

// grantRoles assigns the standard landlord/tenant/inspector roles used by
// most workflow tests
func (env *testEnv) grantRoles(t *testing.T) {
	t.Helper()
	require.NoError(
		t,
		env.ledger.GrantRole(testAdmin, ledger.RoleLandlord, testLandlord),
	)
	require.NoError(
		t,
		env.ledger.GrantRole(testAdmin, ledger.RoleTenant, testTenant),
	)
	require.NoError(
		t,
		env.ledger.GrantRole(testAdmin, ledger.RoleInspector, testInspect),
	)
}

// addRentedProperty registers a property for the test landlord and rents
// it to the test tenant
func (env *testEnv) addRentedProperty(
	t *testing.T,
	monthlyRent uint64,
	penaltyRateBps uint,
) uint64 {
	t.Helper()
	prop, err := env.ledger.AddProperty(
		testLandlord,
		monthlyRent,
		penaltyRateBps,
		"",
	)
	require.NoError(t, err)
	require.NoError(t, env.ledger.Rent(testTenant, prop.ID))
	return prop.ID
}

// fundTenant mints whole tokens to the tenant and approves the platform
// spender for the full balance
func (env *testEnv) fundTenant(t *testing.T, wholeTokens uint64) {
	t.Helper()
	require.NoError(
		t,
		env.tokens.Mint(nil, string(testPlatform), string(testTenant), wholeTokens),
	)
	balance, err := env.tokens.BalanceOf(string(testTenant))
	require.NoError(t, err)
	require.NoError(
		t,
		env.tokens.Approve(
			nil,
			string(testTenant),
			string(testPlatform),
			balance,
		),
	)
}

func TestBootstrapIdempotent(t *testing.T) {
	env := newTestEnv(t)

	// Second bootstrap with a different fee rate leaves stored state alone
	require.NoError(
		t,
		env.ledger.Bootstrap([]ledger.Identity{testAdmin}, 500),
	)
	hasRole, err := env.ledger.HasRole(ledger.RoleAdministrator, testAdmin)
	require.NoError(t, err)
	assert.True(t, hasRole)
	rate, err := env.ledger.FeeRate()
	require.NoError(t, err)
	assert.Equal(t, uint(1000), rate)
}

func TestGrantRoleRejectsDuplicate(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(
		t,
		env.ledger.GrantRole(testAdmin, ledger.RoleLandlord, testLandlord),
	)
	err := env.ledger.GrantRole(testAdmin, ledger.RoleLandlord, testLandlord)
	assert.ErrorIs(t, err, ledger.ErrAlreadyMember)

	hasRole, err := env.ledger.HasRole(ledger.RoleLandlord, testLandlord)
	require.NoError(t, err)
	assert.True(t, hasRole)
}

func TestRevokeRoleRejectsMissing(t *testing.T) {
	env := newTestEnv(t)

	err := env.ledger.RevokeRole(testAdmin, ledger.RoleLandlord, testLandlord)
	assert.ErrorIs(t, err, ledger.ErrNotMember)
}

func TestGrantRoleRequiresAdministrator(t *testing.T) {
	env := newTestEnv(t)

	err := env.ledger.GrantRole("mallory", ledger.RoleLandlord, testLandlord)
	assert.ErrorIs(t, err, ledger.ErrNotAuthorized)
}

func TestGrantRoleRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	err := env.ledger.GrantRole(testAdmin, ledger.Role("superuser"), testLandlord)
	assert.ErrorIs(t, err, ledger.ErrUnknownRole)
}

func TestRevokeLastAdministrator(t *testing.T) {
	env := newTestEnv(t)

	err := env.ledger.RevokeRole(testAdmin, ledger.RoleAdministrator, testAdmin)
	assert.ErrorIs(t, err, ledger.ErrLastAdministrator)

	// With a second administrator the revoke goes through
	other := ledger.Identity("admin-2")
	require.NoError(
		t,
		env.ledger.GrantRole(testAdmin, ledger.RoleAdministrator, other),
	)
	require.NoError(
		t,
		env.ledger.RevokeRole(testAdmin, ledger.RoleAdministrator, testAdmin),
	)
	hasRole, err := env.ledger.HasRole(ledger.RoleAdministrator, testAdmin)
	require.NoError(t, err)
	assert.False(t, hasRole)
}

func TestSetFeeRateCeiling(t *testing.T) {
	env := newTestEnv(t)

	err := env.ledger.SetFeeRate(testAdmin, 1001)
	assert.ErrorIs(t, err, ledger.ErrFeeTooHigh)

	require.NoError(t, env.ledger.SetFeeRate(testAdmin, 1000))
	rate, err := env.ledger.FeeRate()
	require.NoError(t, err)
	assert.Equal(t, uint(1000), rate)
}

func TestSetFeeRateRequiresAdministrator(t *testing.T) {
	env := newTestEnv(t)

	err := env.ledger.SetFeeRate("mallory", 100)
	assert.ErrorIs(t, err, ledger.ErrNotAuthorized)
}

func TestAddPropertySequentialIds(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)

	for i := 1; i <= 3; i++ {
		prop, err := env.ledger.AddProperty(testLandlord, 100_000, 1000, "")
		require.NoError(t, err)
		assert.Equal(t, uint64(i), prop.ID)
	}
	props, err := env.ledger.Properties()
	require.NoError(t, err)
	assert.Len(t, props, 3)
}

func TestAddPropertyRequiresLandlord(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)

	_, err := env.ledger.AddProperty(testTenant, 100_000, 1000, "")
	assert.ErrorIs(t, err, ledger.ErrNotAuthorized)
}

func TestAddPropertyRejectsZeroRent(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)

	_, err := env.ledger.AddProperty(testLandlord, 0, 1000, "")
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}

func TestPropertyNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.Property(42)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestRent(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)

	prop, err := env.ledger.AddProperty(testLandlord, 100_000, 1000, "")
	require.NoError(t, err)
	require.NoError(t, env.ledger.Rent(testTenant, prop.ID))

	rented, err := env.ledger.Property(prop.ID)
	require.NoError(t, err)
	assert.Equal(t, string(testTenant), rented.Tenant)
	assert.False(t, rented.AvailableForRent)
}

func TestRentUnknownProperty(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)

	err := env.ledger.Rent(testTenant, 42)
	assert.ErrorIs(t, err, ledger.ErrDoesNotExist)
}

func TestRentOccupiedProperty(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)

	other := ledger.Identity("tenant-2")
	require.NoError(
		t,
		env.ledger.GrantRole(testAdmin, ledger.RoleTenant, other),
	)
	err := env.ledger.Rent(other, id)
	assert.ErrorIs(t, err, ledger.ErrAlreadyRented)
}

func TestRentRequiresTenantRole(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	prop, err := env.ledger.AddProperty(testLandlord, 100_000, 1000, "")
	require.NoError(t, err)

	err = env.ledger.Rent(testLandlord, prop.ID)
	assert.ErrorIs(t, err, ledger.ErrNotAuthorized)
}

func TestPayRentSplitsFee(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	// Fee rate 1000 bps over a 100000-unit rent is a 10000-unit fee
	id := env.addRentedProperty(t, 100_000, 1000)
	env.fundTenant(t, 200)

	require.NoError(t, env.ledger.PayRent(testTenant, id))

	landlordBalance, err := env.tokens.BalanceOf(string(testLandlord))
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000), landlordBalance)
	platformBalance, err := env.tokens.BalanceOf(string(testPlatform))
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000), platformBalance)
	tenantBalance, err := env.tokens.BalanceOf(string(testTenant))
	require.NoError(t, err)
	assert.Equal(t, uint64(90_000), tenantBalance)
}

func TestPayRentRequiresCurrentTenant(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)

	err := env.ledger.PayRent(testLandlord, id)
	assert.ErrorIs(t, err, ledger.ErrNotAuthorized)
}

func TestPayRentRequiresRental(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	prop, err := env.ledger.AddProperty(testLandlord, 100_000, 1000, "")
	require.NoError(t, err)

	err = env.ledger.PayRent(testTenant, prop.ID)
	assert.ErrorIs(t, err, ledger.ErrNotRented)
}

func TestPayRentInsufficientAllowanceIsAtomic(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)
	// Enough for the rent leg but not the fee leg
	require.NoError(
		t,
		env.tokens.Mint(nil, string(testPlatform), string(testTenant), 200),
	)
	require.NoError(
		t,
		env.tokens.Approve(
			nil,
			string(testTenant),
			string(testPlatform),
			100_000,
		),
	)

	err := env.ledger.PayRent(testTenant, id)
	assert.ErrorIs(t, err, token.ErrInsufficientAllowance)

	// The rent leg rolled back with the failed fee leg
	landlordBalance, err := env.tokens.BalanceOf(string(testLandlord))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), landlordBalance)
	tenantBalance, err := env.tokens.BalanceOf(string(testTenant))
	require.NoError(t, err)
	assert.Equal(t, uint64(200_000), tenantBalance)
	allowance, err := env.tokens.Allowance(
		string(testTenant),
		string(testPlatform),
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000), allowance)
}

func TestTerminationRequests(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)

	require.NoError(t, env.ledger.RequestTerminationByTenant(testTenant, id))
	require.NoError(
		t,
		env.ledger.RequestTerminationByLandlord(testLandlord, id),
	)

	prop, err := env.ledger.Property(id)
	require.NoError(t, err)
	assert.True(t, prop.TerminationRequestedByTenant)
	assert.True(t, prop.TerminationRequestedByLandlord)
}

func TestTerminationRequestsRequireCounterpart(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)

	err := env.ledger.RequestTerminationByTenant(testLandlord, id)
	assert.ErrorIs(t, err, ledger.ErrNotAuthorized)
	err = env.ledger.RequestTerminationByLandlord(testTenant, id)
	assert.ErrorIs(t, err, ledger.ErrNotAuthorized)
}

func TestTerminationRequestsRequireRental(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	prop, err := env.ledger.AddProperty(testLandlord, 100_000, 1000, "")
	require.NoError(t, err)

	err = env.ledger.RequestTerminationByTenant(testTenant, prop.ID)
	assert.ErrorIs(t, err, ledger.ErrNotRented)
}

func TestInspectApproved(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)

	require.NoError(t, env.ledger.Inspect(testInspect, id, true))

	prop, err := env.ledger.Property(id)
	require.NoError(t, err)
	assert.True(t, prop.InspectionCompleted)
	assert.True(t, prop.InspectionApproved)
}

func TestInspectRejectedAssessesPenalty(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)

	_, evtCh := env.eventBus.Subscribe(event.PenaltyAssessedEventType)
	require.NoError(t, env.ledger.Inspect(testInspect, id, false))

	prop, err := env.ledger.Property(id)
	require.NoError(t, err)
	assert.True(t, prop.InspectionCompleted)
	assert.False(t, prop.InspectionApproved)

	evt := <-evtCh
	payload, ok := evt.Data.(event.PenaltyAssessedEvent)
	require.True(t, ok)
	// 1000 bps of a 100000-unit rent
	assert.Equal(t, uint64(10_000), payload.Amount)
}

func TestInspectOnlyOncePerCycle(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)

	require.NoError(t, env.ledger.Inspect(testInspect, id, true))
	err := env.ledger.Inspect(testInspect, id, false)
	assert.ErrorIs(t, err, ledger.ErrAlreadyInspected)
}

func TestInspectRequiresRental(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	prop, err := env.ledger.AddProperty(testLandlord, 100_000, 1000, "")
	require.NoError(t, err)

	// A vacant property has no rental cycle to inspect
	err = env.ledger.Inspect(testInspect, prop.ID, true)
	assert.ErrorIs(t, err, ledger.ErrNotRented)

	// The rejected outcome leaves no state behind: the first tenant's
	// cycle still requires its own inspection before termination
	require.NoError(t, env.ledger.Rent(testTenant, prop.ID))
	err = env.ledger.ConfirmTermination(testTenant, prop.ID)
	assert.ErrorIs(t, err, ledger.ErrTerminationNotReady)

	fetched, err := env.ledger.Property(prop.ID)
	require.NoError(t, err)
	assert.False(t, fetched.InspectionCompleted)
}

func TestInspectRequiresInspector(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)

	err := env.ledger.Inspect(testLandlord, id, true)
	assert.ErrorIs(t, err, ledger.ErrNotAuthorized)
}

func TestInspectPenaltyWideRate(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	// The 64-bit product of rent and rate wraps; the assessed penalty
	// must come from the full-width product
	prop, err := env.ledger.AddProperty(
		testLandlord,
		1_000_000_000_000_000_000,
		100_000,
		"",
	)
	require.NoError(t, err)
	require.NoError(t, env.ledger.Rent(testTenant, prop.ID))

	_, evtCh := env.eventBus.Subscribe(event.PenaltyAssessedEventType)
	require.NoError(t, env.ledger.Inspect(testInspect, prop.ID, false))

	evt := <-evtCh
	payload, ok := evt.Data.(event.PenaltyAssessedEvent)
	require.True(t, ok)
	// 100000 bps of 10^18 units is 10^19 units
	assert.Equal(t, uint64(10_000_000_000_000_000_000), payload.Amount)
}

func TestInspectPenaltyExceedsRange(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	// rent * rate / 10000 does not fit in 64 bits
	prop, err := env.ledger.AddProperty(
		testLandlord,
		1_000_000_000_000_000_000,
		400_000_000,
		"",
	)
	require.NoError(t, err)
	require.NoError(t, env.ledger.Rent(testTenant, prop.ID))

	err = env.ledger.Inspect(testInspect, prop.ID, false)
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	// The failed assessment rolls back the inspection outcome
	fetched, err := env.ledger.Property(prop.ID)
	require.NoError(t, err)
	assert.False(t, fetched.InspectionCompleted)
}

func TestPayPenalty(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)
	env.fundTenant(t, 200)
	require.NoError(t, env.ledger.Inspect(testInspect, id, false))

	require.NoError(t, env.ledger.PayPenalty(testTenant, id))

	prop, err := env.ledger.Property(id)
	require.NoError(t, err)
	assert.True(t, prop.PenaltyPaid)
	// The 10000-unit penalty goes to the property owner
	landlordBalance, err := env.tokens.BalanceOf(string(testLandlord))
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000), landlordBalance)
	tenantBalance, err := env.tokens.BalanceOf(string(testTenant))
	require.NoError(t, err)
	assert.Equal(t, uint64(190_000), tenantBalance)
}

func TestPayPenaltyWithoutAssessment(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)

	// Before any inspection
	err := env.ledger.PayPenalty(testTenant, id)
	assert.ErrorIs(t, err, ledger.ErrNoPenaltyDue)

	// After an approved inspection
	require.NoError(t, env.ledger.Inspect(testInspect, id, true))
	err = env.ledger.PayPenalty(testTenant, id)
	assert.ErrorIs(t, err, ledger.ErrNoPenaltyDue)
}

func TestPayPenaltyOnlyOnce(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)
	env.fundTenant(t, 200)
	require.NoError(t, env.ledger.Inspect(testInspect, id, false))

	require.NoError(t, env.ledger.PayPenalty(testTenant, id))
	err := env.ledger.PayPenalty(testTenant, id)
	assert.ErrorIs(t, err, ledger.ErrAlreadyPaid)
}

func TestPayPenaltyInsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)
	// 5000 units is short of the 10000-unit penalty
	require.NoError(
		t,
		env.tokens.Mint(nil, string(testPlatform), string(testTenant), 5),
	)
	require.NoError(t, env.ledger.Inspect(testInspect, id, false))

	err := env.ledger.PayPenalty(testTenant, id)
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	// Nothing moved and the penalty remains payable
	prop, err := env.ledger.Property(id)
	require.NoError(t, err)
	assert.False(t, prop.PenaltyPaid)
	tenantBalance, err := env.tokens.BalanceOf(string(testTenant))
	require.NoError(t, err)
	assert.Equal(t, uint64(5_000), tenantBalance)
}

func TestConfirmTerminationRequiresInspection(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)

	err := env.ledger.ConfirmTermination(testTenant, id)
	assert.ErrorIs(t, err, ledger.ErrTerminationNotReady)
}

func TestConfirmTerminationRequiresSettledPenalty(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)
	require.NoError(t, env.ledger.Inspect(testInspect, id, false))

	err := env.ledger.ConfirmTermination(testTenant, id)
	assert.ErrorIs(t, err, ledger.ErrTerminationNotReady)
}

func TestConfirmTerminationAfterApproval(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)
	require.NoError(t, env.ledger.RequestTerminationByTenant(testTenant, id))
	require.NoError(t, env.ledger.Inspect(testInspect, id, true))

	require.NoError(t, env.ledger.ConfirmTermination(testTenant, id))

	prop, err := env.ledger.Property(id)
	require.NoError(t, err)
	assert.False(t, prop.Rented())
	assert.True(t, prop.AvailableForRent)
	assert.False(t, prop.TerminationRequestedByTenant)
	assert.False(t, prop.TerminationRequestedByLandlord)
	assert.False(t, prop.InspectionCompleted)
	assert.False(t, prop.InspectionApproved)
	assert.False(t, prop.PenaltyPaid)
}

func TestConfirmTerminationAfterPenaltyPayment(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)
	env.fundTenant(t, 200)
	require.NoError(t, env.ledger.Inspect(testInspect, id, false))
	require.NoError(t, env.ledger.PayPenalty(testTenant, id))

	require.NoError(t, env.ledger.ConfirmTermination(testTenant, id))

	prop, err := env.ledger.Property(id)
	require.NoError(t, err)
	assert.True(t, prop.AvailableForRent)
}

func TestPropertyRentableAfterTermination(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	id := env.addRentedProperty(t, 100_000, 1000)
	require.NoError(t, env.ledger.Inspect(testInspect, id, true))
	require.NoError(t, env.ledger.ConfirmTermination(testTenant, id))

	// A fresh rental cycle starts with a clean inspection state
	other := ledger.Identity("tenant-2")
	require.NoError(
		t,
		env.ledger.GrantRole(testAdmin, ledger.RoleTenant, other),
	)
	require.NoError(t, env.ledger.Rent(other, id))
	require.NoError(t, env.ledger.Inspect(testInspect, id, true))
}

func TestEventJournalRecordsOperations(t *testing.T) {
	env := newTestEnv(t)
	env.grantRoles(t)
	env.addRentedProperty(t, 100_000, 1000)

	records, err := env.db.EventsSince(0, 0)
	require.NoError(t, err)
	var types []string
	for _, record := range records {
		types = append(types, record.Type)
	}
	// Bootstrap grant, three role grants, property added, property rented
	assert.Equal(t, []string{
		string(event.RoleChangedEventType),
		string(event.RoleChangedEventType),
		string(event.RoleChangedEventType),
		string(event.RoleChangedEventType),
		string(event.PropertyAddedEventType),
		string(event.PropertyRentedEventType),
	}, types)
}
