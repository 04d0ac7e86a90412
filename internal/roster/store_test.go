package roster

import (
	"testing"

	"github.com/riskibarqy/auction-desk/internal/domain/auction"
	"github.com/riskibarqy/auction-desk/internal/domain/player"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
	"github.com/stretchr/testify/require"
)

func testTeam(id string, purse int64) team.Team {
	return team.Team{
		ID:             id,
		Name:           "Team " + id,
		PurseGiven:     purse,
		PurseRemaining: purse,
	}
}

func testPlayer(id string, basePrice int64, rating int) player.Player {
	return player.Player{
		ID:        id,
		Name:      "Player " + id,
		Type:      player.TypeBatsman,
		BasePrice: basePrice,
		Rating:    rating,
		Status:    player.StatusUnsold,
	}
}

func TestStore_LoadRejectsDuplicatesAndDanglingRefs(t *testing.T) {
	t.Run("duplicate team", func(t *testing.T) {
		s := NewStore()
		err := s.Load([]team.Team{testTeam("t1", 100), testTeam("t1", 100)}, nil)
		require.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("duplicate player", func(t *testing.T) {
		s := NewStore()
		err := s.Load(nil, []player.Player{testPlayer("p1", 10, 5), testPlayer("p1", 10, 5)})
		require.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("sold player without team", func(t *testing.T) {
		s := NewStore()
		sold := testPlayer("p1", 10, 5)
		sold.Status = player.StatusSold
		sold.SoldPrice = 20
		sold.TeamID = "ghost"
		err := s.Load(nil, []player.Player{sold})
		require.ErrorIs(t, err, ErrTeamNotFound)
	})
}

func TestStore_LoadRebuildsOwnership(t *testing.T) {
	s := NewStore()
	sold := testPlayer("p1", 10, 5)
	sold.Status = player.StatusSold
	sold.SoldPrice = 30
	sold.TeamID = "t1"

	require.NoError(t, s.Load([]team.Team{testTeam("t1", 100)}, []player.Player{sold, testPlayer("p2", 10, 6)}))

	owned := s.OwnedPlayers("t1")
	require.Len(t, owned, 1)
	require.Equal(t, "p1", owned[0].ID)
	require.Len(t, s.Players(), 2)
}

func TestStore_ApplySaleUpdatesBothEntities(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.InsertTeam(testTeam("t1", 1000)))
	require.NoError(t, s.InsertPlayer(testPlayer("p1", 100, 8)))

	require.NoError(t, s.ApplySale(auction.Sale{PlayerID: "p1", TeamID: "t1", Price: 400}))

	p, ok := s.GetPlayer("p1")
	require.True(t, ok)
	require.Equal(t, player.StatusSold, p.Status)
	require.Equal(t, int64(400), p.SoldPrice)
	require.Equal(t, "t1", p.TeamID)

	tm, ok := s.GetTeam("t1")
	require.True(t, ok)
	require.Equal(t, int64(600), tm.PurseRemaining)
	require.Equal(t, int64(400), tm.TotalPurchase)
	require.Equal(t, int64(8), tm.TotalRating)

	owned := s.OwnedPlayers("t1")
	require.Len(t, owned, 1)
	require.Equal(t, "p1", owned[0].ID)
}

func TestStore_ApplySaleRejectsDoubleApply(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.InsertTeam(testTeam("t1", 1000)))
	require.NoError(t, s.InsertTeam(testTeam("t2", 1000)))
	require.NoError(t, s.InsertPlayer(testPlayer("p1", 100, 8)))

	sale := auction.Sale{PlayerID: "p1", TeamID: "t1", Price: 400}
	require.NoError(t, s.ApplySale(sale))

	err := s.ApplySale(auction.Sale{PlayerID: "p1", TeamID: "t2", Price: 500})
	require.ErrorIs(t, err, auction.ErrAlreadySold)

	// The rejected attempt must not touch any entity.
	tm, _ := s.GetTeam("t2")
	require.Equal(t, int64(1000), tm.PurseRemaining)
	p, _ := s.GetPlayer("p1")
	require.Equal(t, "t1", p.TeamID)
}

func TestStore_InsertPlayersAllOrNothing(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.InsertPlayer(testPlayer("p1", 10, 5)))

	batch := []player.Player{testPlayer("p2", 10, 5), testPlayer("p1", 10, 5)}
	err := s.InsertPlayers(batch)
	require.ErrorIs(t, err, ErrDuplicateID)
	require.Len(t, s.Players(), 1)
}

func TestStore_InsertPlayersRejectsIntraBatchDuplicate(t *testing.T) {
	s := NewStore()

	batch := []player.Player{
		testPlayer("p1", 10, 5),
		testPlayer("p2", 10, 6),
		testPlayer("p2", 10, 6),
	}
	err := s.InsertPlayers(batch)
	require.ErrorIs(t, err, ErrDuplicateID)
	require.Empty(t, s.Players())
}

func TestStore_RemoveTeamUnwindsOwnedPlayers(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.InsertTeam(testTeam("t1", 1000)))
	require.NoError(t, s.InsertPlayer(testPlayer("p1", 100, 8)))
	require.NoError(t, s.InsertPlayer(testPlayer("p2", 100, 6)))
	require.NoError(t, s.ApplySale(auction.Sale{PlayerID: "p1", TeamID: "t1", Price: 200}))
	require.NoError(t, s.ApplySale(auction.Sale{PlayerID: "p2", TeamID: "t1", Price: 150}))

	unwound, err := s.RemoveTeam("t1")
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p2"}, unwound)

	_, ok := s.GetTeam("t1")
	require.False(t, ok)
	for _, id := range []string{"p1", "p2"} {
		p, ok := s.GetPlayer(id)
		require.True(t, ok)
		require.Equal(t, player.StatusUnsold, p.Status)
		require.Zero(t, p.SoldPrice)
		require.Empty(t, p.TeamID)
	}
	require.Empty(t, s.Teams())
	require.Len(t, s.Players(), 2)
}

func TestStore_RemoveTeamMissing(t *testing.T) {
	s := NewStore()
	_, err := s.RemoveTeam("ghost")
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.InsertTeam(testTeam("t1", 1000)))

	teams := s.Teams()
	teams[0].PurseRemaining = 1

	tm, _ := s.GetTeam("t1")
	require.Equal(t, int64(1000), tm.PurseRemaining)
}

func TestStore_RostersSnapshot(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.InsertTeam(testTeam("t1", 1000)))
	require.NoError(t, s.InsertTeam(testTeam("t2", 1000)))
	require.NoError(t, s.InsertPlayer(testPlayer("p1", 100, 8)))
	require.NoError(t, s.ApplySale(auction.Sale{PlayerID: "p1", TeamID: "t2", Price: 100}))

	rosters := s.Rosters()
	require.Len(t, rosters, 2)
	require.Equal(t, "t1", rosters[0].Team.ID)
	require.Empty(t, rosters[0].Players)
	require.Equal(t, "t2", rosters[1].Team.ID)
	require.Len(t, rosters[1].Players, 1)
	require.Equal(t, "p1", rosters[1].Players[0].ID)
}
