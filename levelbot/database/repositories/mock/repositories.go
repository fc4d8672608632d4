package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/playforge/levelbot/levelbot/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockPlayerRepository is a mock of PlayerRepository interface.
type MockPlayerRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPlayerRepositoryMockRecorder
	isgomock struct{}
}

// MockPlayerRepositoryMockRecorder is the mock recorder for MockPlayerRepository.
type MockPlayerRepositoryMockRecorder struct {
	mock *MockPlayerRepository
}

// NewMockPlayerRepository creates a new mock instance.
func NewMockPlayerRepository(ctrl *gomock.Controller) *MockPlayerRepository {
	mock := &MockPlayerRepository{ctrl: ctrl}
	mock.recorder = &MockPlayerRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPlayerRepository) EXPECT() *MockPlayerRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, player)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockPlayerRepositoryMockRecorder) Create(ctx, player any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPlayerRepository)(nil).Create), ctx, player)
}

// GetByDiscordID mocks base method.
func (m *MockPlayerRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.Player, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByDiscordID", ctx, discordID)
	ret0, _ := ret[0].(*models.Player)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByDiscordID indicates an expected call of GetByDiscordID.
func (mr *MockPlayerRepositoryMockRecorder) GetByDiscordID(ctx, discordID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByDiscordID", reflect.TypeOf((*MockPlayerRepository)(nil).GetByDiscordID), ctx, discordID)
}

// GetByID mocks base method.
func (m *MockPlayerRepository) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Player)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockPlayerRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPlayerRepository)(nil).GetByID), ctx, id)
}

// GetTopPlayers mocks base method.
func (m *MockPlayerRepository) GetTopPlayers(ctx context.Context, limit int) ([]*models.Player, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTopPlayers", ctx, limit)
	ret0, _ := ret[0].([]*models.Player)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTopPlayers indicates an expected call of GetTopPlayers.
func (mr *MockPlayerRepositoryMockRecorder) GetTopPlayers(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTopPlayers", reflect.TypeOf((*MockPlayerRepository)(nil).GetTopPlayers), ctx, limit)
}

// UpdateLoginStats mocks base method.
func (m *MockPlayerRepository) UpdateLoginStats(ctx context.Context, player *models.Player) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateLoginStats", ctx, player)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateLoginStats indicates an expected call of UpdateLoginStats.
func (mr *MockPlayerRepositoryMockRecorder) UpdateLoginStats(ctx, player any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateLoginStats", reflect.TypeOf((*MockPlayerRepository)(nil).UpdateLoginStats), ctx, player)
}

// MockBoostRepository is a mock of BoostRepository interface.
type MockBoostRepository struct {
	ctrl     *gomock.Controller
	recorder *MockBoostRepositoryMockRecorder
	isgomock struct{}
}

// MockBoostRepositoryMockRecorder is the mock recorder for MockBoostRepository.
type MockBoostRepositoryMockRecorder struct {
	mock *MockBoostRepository
}

// NewMockBoostRepository creates a new mock instance.
func NewMockBoostRepository(ctrl *gomock.Controller) *MockBoostRepository {
	mock := &MockBoostRepository{ctrl: ctrl}
	mock.recorder = &MockBoostRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBoostRepository) EXPECT() *MockBoostRepositoryMockRecorder {
	return m.recorder
}

// ActivateBoost mocks base method.
func (m *MockBoostRepository) ActivateBoost(ctx context.Context, id int64, usedAt, expiresAt time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ActivateBoost", ctx, id, usedAt, expiresAt)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ActivateBoost indicates an expected call of ActivateBoost.
func (mr *MockBoostRepositoryMockRecorder) ActivateBoost(ctx, id, usedAt, expiresAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ActivateBoost", reflect.TypeOf((*MockBoostRepository)(nil).ActivateBoost), ctx, id, usedAt, expiresAt)
}

// CreateBoost mocks base method.
func (m *MockBoostRepository) CreateBoost(ctx context.Context, boost *models.Boost) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBoost", ctx, boost)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBoost indicates an expected call of CreateBoost.
func (mr *MockBoostRepositoryMockRecorder) CreateBoost(ctx, boost any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBoost", reflect.TypeOf((*MockBoostRepository)(nil).CreateBoost), ctx, boost)
}

// CreateBoostType mocks base method.
func (m *MockBoostRepository) CreateBoostType(ctx context.Context, bt *models.BoostType) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBoostType", ctx, bt)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBoostType indicates an expected call of CreateBoostType.
func (mr *MockBoostRepositoryMockRecorder) CreateBoostType(ctx, bt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBoostType", reflect.TypeOf((*MockBoostRepository)(nil).CreateBoostType), ctx, bt)
}

// DeactivateBoost mocks base method.
func (m *MockBoostRepository) DeactivateBoost(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeactivateBoost", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeactivateBoost indicates an expected call of DeactivateBoost.
func (mr *MockBoostRepositoryMockRecorder) DeactivateBoost(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeactivateBoost", reflect.TypeOf((*MockBoostRepository)(nil).DeactivateBoost), ctx, id)
}

// GetBoost mocks base method.
func (m *MockBoostRepository) GetBoost(ctx context.Context, id int64) (*models.Boost, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBoost", ctx, id)
	ret0, _ := ret[0].(*models.Boost)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBoost indicates an expected call of GetBoost.
func (mr *MockBoostRepositoryMockRecorder) GetBoost(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBoost", reflect.TypeOf((*MockBoostRepository)(nil).GetBoost), ctx, id)
}

// GetBoostType mocks base method.
func (m *MockBoostRepository) GetBoostType(ctx context.Context, id int64) (*models.BoostType, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBoostType", ctx, id)
	ret0, _ := ret[0].(*models.BoostType)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBoostType indicates an expected call of GetBoostType.
func (mr *MockBoostRepositoryMockRecorder) GetBoostType(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBoostType", reflect.TypeOf((*MockBoostRepository)(nil).GetBoostType), ctx, id)
}

// GetBoostTypeByKind mocks base method.
func (m *MockBoostRepository) GetBoostTypeByKind(ctx context.Context, kind string) (*models.BoostType, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBoostTypeByKind", ctx, kind)
	ret0, _ := ret[0].(*models.BoostType)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBoostTypeByKind indicates an expected call of GetBoostTypeByKind.
func (mr *MockBoostRepositoryMockRecorder) GetBoostTypeByKind(ctx, kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBoostTypeByKind", reflect.TypeOf((*MockBoostRepository)(nil).GetBoostTypeByKind), ctx, kind)
}

// GetPlayerBoosts mocks base method.
func (m *MockBoostRepository) GetPlayerBoosts(ctx context.Context, playerID int64) ([]*models.Boost, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPlayerBoosts", ctx, playerID)
	ret0, _ := ret[0].([]*models.Boost)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPlayerBoosts indicates an expected call of GetPlayerBoosts.
func (mr *MockBoostRepositoryMockRecorder) GetPlayerBoosts(ctx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPlayerBoosts", reflect.TypeOf((*MockBoostRepository)(nil).GetPlayerBoosts), ctx, playerID)
}

// GetPlayerHistory mocks base method.
func (m *MockBoostRepository) GetPlayerHistory(ctx context.Context, playerID int64, limit int) ([]*models.BoostHistory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPlayerHistory", ctx, playerID, limit)
	ret0, _ := ret[0].([]*models.BoostHistory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPlayerHistory indicates an expected call of GetPlayerHistory.
func (mr *MockBoostRepositoryMockRecorder) GetPlayerHistory(ctx, playerID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPlayerHistory", reflect.TypeOf((*MockBoostRepository)(nil).GetPlayerHistory), ctx, playerID, limit)
}

// ListBoostTypes mocks base method.
func (m *MockBoostRepository) ListBoostTypes(ctx context.Context) ([]*models.BoostType, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBoostTypes", ctx)
	ret0, _ := ret[0].([]*models.BoostType)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBoostTypes indicates an expected call of ListBoostTypes.
func (mr *MockBoostRepositoryMockRecorder) ListBoostTypes(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBoostTypes", reflect.TypeOf((*MockBoostRepository)(nil).ListBoostTypes), ctx)
}

// MockProgressionRepository is a mock of ProgressionRepository interface.
type MockProgressionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockProgressionRepositoryMockRecorder
	isgomock struct{}
}

// MockProgressionRepositoryMockRecorder is the mock recorder for MockProgressionRepository.
type MockProgressionRepositoryMockRecorder struct {
	mock *MockProgressionRepository
}

// NewMockProgressionRepository creates a new mock instance.
func NewMockProgressionRepository(ctrl *gomock.Controller) *MockProgressionRepository {
	mock := &MockProgressionRepository{ctrl: ctrl}
	mock.recorder = &MockProgressionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProgressionRepository) EXPECT() *MockProgressionRepositoryMockRecorder {
	return m.recorder
}

// CreateAward mocks base method.
func (m *MockProgressionRepository) CreateAward(ctx context.Context, award *models.Award) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAward", ctx, award)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateAward indicates an expected call of CreateAward.
func (mr *MockProgressionRepositoryMockRecorder) CreateAward(ctx, award any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAward", reflect.TypeOf((*MockProgressionRepository)(nil).CreateAward), ctx, award)
}

// CreateLevel mocks base method.
func (m *MockProgressionRepository) CreateLevel(ctx context.Context, level *models.Level) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateLevel", ctx, level)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateLevel indicates an expected call of CreateLevel.
func (mr *MockProgressionRepositoryMockRecorder) CreateLevel(ctx, level any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateLevel", reflect.TypeOf((*MockProgressionRepository)(nil).CreateLevel), ctx, level)
}

// GetAward mocks base method.
func (m *MockProgressionRepository) GetAward(ctx context.Context, id int64) (*models.Award, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAward", ctx, id)
	ret0, _ := ret[0].(*models.Award)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAward indicates an expected call of GetAward.
func (mr *MockProgressionRepositoryMockRecorder) GetAward(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAward", reflect.TypeOf((*MockProgressionRepository)(nil).GetAward), ctx, id)
}

// GetLevel mocks base method.
func (m *MockProgressionRepository) GetLevel(ctx context.Context, id int64) (*models.Level, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLevel", ctx, id)
	ret0, _ := ret[0].(*models.Level)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLevel indicates an expected call of GetLevel.
func (mr *MockProgressionRepositoryMockRecorder) GetLevel(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLevel", reflect.TypeOf((*MockProgressionRepository)(nil).GetLevel), ctx, id)
}

// GetOrCreatePlayer mocks base method.
func (m *MockProgressionRepository) GetOrCreatePlayer(ctx context.Context, ref string) (*models.ProgressPlayer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrCreatePlayer", ctx, ref)
	ret0, _ := ret[0].(*models.ProgressPlayer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrCreatePlayer indicates an expected call of GetOrCreatePlayer.
func (mr *MockProgressionRepositoryMockRecorder) GetOrCreatePlayer(ctx, ref any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrCreatePlayer", reflect.TypeOf((*MockProgressionRepository)(nil).GetOrCreatePlayer), ctx, ref)
}

// GetPlayerByRef mocks base method.
func (m *MockProgressionRepository) GetPlayerByRef(ctx context.Context, ref string) (*models.ProgressPlayer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPlayerByRef", ctx, ref)
	ret0, _ := ret[0].(*models.ProgressPlayer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPlayerByRef indicates an expected call of GetPlayerByRef.
func (mr *MockProgressionRepositoryMockRecorder) GetPlayerByRef(ctx, ref any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPlayerByRef", reflect.TypeOf((*MockProgressionRepository)(nil).GetPlayerByRef), ctx, ref)
}

// GrantLevelAwards mocks base method.
func (m *MockProgressionRepository) GrantLevelAwards(ctx context.Context, player *models.ProgressPlayer, level *models.Level, completedOn time.Time) ([]*models.Award, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GrantLevelAwards", ctx, player, level, completedOn)
	ret0, _ := ret[0].([]*models.Award)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GrantLevelAwards indicates an expected call of GrantLevelAwards.
func (mr *MockProgressionRepositoryMockRecorder) GrantLevelAwards(ctx, player, level, completedOn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GrantLevelAwards", reflect.TypeOf((*MockProgressionRepository)(nil).GrantLevelAwards), ctx, player, level, completedOn)
}

// LinkAward mocks base method.
func (m *MockProgressionRepository) LinkAward(ctx context.Context, levelID, awardID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LinkAward", ctx, levelID, awardID)
	ret0, _ := ret[0].(error)
	return ret0
}

// LinkAward indicates an expected call of LinkAward.
func (mr *MockProgressionRepositoryMockRecorder) LinkAward(ctx, levelID, awardID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LinkAward", reflect.TypeOf((*MockProgressionRepository)(nil).LinkAward), ctx, levelID, awardID)
}

// ListAwards mocks base method.
func (m *MockProgressionRepository) ListAwards(ctx context.Context) ([]*models.Award, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAwards", ctx)
	ret0, _ := ret[0].([]*models.Award)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAwards indicates an expected call of ListAwards.
func (mr *MockProgressionRepositoryMockRecorder) ListAwards(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAwards", reflect.TypeOf((*MockProgressionRepository)(nil).ListAwards), ctx)
}

// ListLevels mocks base method.
func (m *MockProgressionRepository) ListLevels(ctx context.Context) ([]*models.Level, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListLevels", ctx)
	ret0, _ := ret[0].([]*models.Level)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListLevels indicates an expected call of ListLevels.
func (mr *MockProgressionRepositoryMockRecorder) ListLevels(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListLevels", reflect.TypeOf((*MockProgressionRepository)(nil).ListLevels), ctx)
}

// ListPlayerAwards mocks base method.
func (m *MockProgressionRepository) ListPlayerAwards(ctx context.Context, playerID, levelID int64) ([]*models.PlayerAward, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPlayerAwards", ctx, playerID, levelID)
	ret0, _ := ret[0].([]*models.PlayerAward)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPlayerAwards indicates an expected call of ListPlayerAwards.
func (mr *MockProgressionRepositoryMockRecorder) ListPlayerAwards(ctx, playerID, levelID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPlayerAwards", reflect.TypeOf((*MockProgressionRepository)(nil).ListPlayerAwards), ctx, playerID, levelID)
}

// ListPlayerLevels mocks base method.
func (m *MockProgressionRepository) ListPlayerLevels(ctx context.Context, limit, offset int) ([]*models.PlayerLevel, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPlayerLevels", ctx, limit, offset)
	ret0, _ := ret[0].([]*models.PlayerLevel)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPlayerLevels indicates an expected call of ListPlayerLevels.
func (mr *MockProgressionRepositoryMockRecorder) ListPlayerLevels(ctx, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPlayerLevels", reflect.TypeOf((*MockProgressionRepository)(nil).ListPlayerLevels), ctx, limit, offset)
}
