package initialization

import (
	"time"

	"github.com/code-gritt/cryogena/internal/config"
	"github.com/code-gritt/cryogena/internal/domain"
	"github.com/code-gritt/cryogena/internal/interaction"
	"github.com/code-gritt/cryogena/internal/managers"
	"github.com/code-gritt/cryogena/pkg/clients/cryogena"
)

// Container wires the session, the remote client and the managers
// together. There is exactly one of each per process; every consumer
// receives its dependencies from here instead of reaching for globals.
type Container struct {
	config      *config.Config
	session     *domain.Session
	client      *cryogena.Client
	workspace   *managers.WorkspaceManager
	commands    *managers.CommandManager
	bin         *managers.BinManager
	interaction *interaction.Machine
}

type ContainerDependencies struct {
	Notifier  domain.Notifier
	Navigator domain.Navigator
}

func NewContainer(deps ContainerDependencies) (*Container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	session := domain.NewSession(cfg.Token, domain.Profile{
		Username:       cfg.Username,
		Email:          cfg.Email,
		AvatarInitials: cfg.AvatarInitials,
	})

	client := cryogena.NewClient(
		cryogena.WithEndpoint(cfg.APIURL),
		cryogena.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
		cryogena.WithCredentialSource(session),
	)

	workspaceManager := managers.NewWorkspaceManager(managers.WorkspaceManagerDependencies{
		Client:    client,
		Navigator: deps.Navigator,
	})

	commandManager := managers.NewCommandManager(managers.CommandManagerDependencies{
		Client:    client,
		Workspace: workspaceManager,
		Notifier:  deps.Notifier,
		Navigator: deps.Navigator,
	})

	binManager := managers.NewBinManager(managers.BinManagerDependencies{
		Client:    client,
		Notifier:  deps.Notifier,
		Navigator: deps.Navigator,
	})

	return &Container{
		config:      cfg,
		session:     session,
		client:      client,
		workspace:   workspaceManager,
		commands:    commandManager,
		bin:         binManager,
		interaction: interaction.NewMachine(),
	}, nil
}

func (c *Container) GetConfig() *config.Config {
	return c.config
}

func (c *Container) GetSession() *domain.Session {
	return c.session
}

func (c *Container) GetClient() *cryogena.Client {
	return c.client
}

func (c *Container) GetWorkspaceManager() *managers.WorkspaceManager {
	return c.workspace
}

func (c *Container) GetCommandManager() *managers.CommandManager {
	return c.commands
}

func (c *Container) GetBinManager() *managers.BinManager {
	return c.bin
}

func (c *Container) GetInteractionMachine() *interaction.Machine {
	return c.interaction
}
