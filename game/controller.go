package game

type GameController struct {
	service *MinesweeperService
}

func NewGameController(service *MinesweeperService) *GameController {
	return &GameController{service: service}
}

// StartGame blocks until the player quits.
func (c *GameController) StartGame() error {
	return c.service.Run()
}

func (c *GameController) TerminateGame() {
	c.service.Stop()
}
