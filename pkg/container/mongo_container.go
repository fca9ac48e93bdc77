package container

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	mongo "go.mongodb.org/mongo-driver/v2/mongo"
	mongooption "go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoContainerConnection struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

func (c MongoContainerConnection) URI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", c.Username, c.Password, c.Host, c.Port)
}

const (
	mongoDBPort  = 27017
	mongoImage   = "mongo"
	mongoVersion = "7.0"
)

// RunMongoContainer starts (or reuses a running) MongoDB container named name
// and waits until it accepts connections.
func RunMongoContainer(builder *ContainerBuilder, name string, options MongoContainerConnection) (MongoContainerConnection, error) {
	portKey := strconv.Itoa(mongoDBPort) + "/tcp"
	runOptions := dockertest.RunOptions{
		Name:       name,
		Repository: mongoImage,
		Tag:        mongoVersion,
		Env: []string{
			"MONGO_INITDB_ROOT_USERNAME=" + options.Username,
			"MONGO_INITDB_ROOT_PASSWORD=" + options.Password,
		},
	}
	if options.Database != "" {
		runOptions.Env = append(runOptions.Env, "MONGO_INITDB_DATABASE="+options.Database)
	}
	if options.Port != "" {
		runOptions.PortBindings = map[docker.Port][]docker.PortBinding{
			docker.Port(portKey): {{HostIP: "127.0.0.1", HostPort: options.Port}},
		}
	}

	conn := MongoContainerConnection{
		Username: options.Username,
		Password: options.Password,
		Database: options.Database,
	}

	existing, err := builder.FindContainer(name)
	if err != nil {
		return MongoContainerConnection{}, err
	}
	if existing != nil && existing.State == "running" {
		for _, bind := range existing.Ports {
			if bind.PrivatePort == mongoDBPort && bind.PublicPort != 0 {
				conn.Host = bind.IP
				conn.Port = strconv.FormatInt(bind.PublicPort, 10)
				break
			}
		}
		if conn.Port == "" {
			return MongoContainerConnection{}, fmt.Errorf("failed to find public port for mongo container (%s)", name)
		}
		builder.AddContainer(existing.ID, ContainerInfo{Name: name, Type: ContainerTypeMongoDB})
	} else {
		resource, err := builder.RunWithOptions(&runOptions)
		if err != nil {
			return MongoContainerConnection{}, fmt.Errorf("run mongo container, err: %w", err)
		}
		builder.AddContainer(resource.Container.ID, ContainerInfo{Name: name, Type: ContainerTypeMongoDB})
		conn.Host = resource.GetBoundIP(portKey)
		conn.Port = resource.GetPort(portKey)
	}
	if conn.Host == "" || conn.Host == "0.0.0.0" {
		conn.Host = "127.0.0.1"
	}

	err = builder.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		client, err := mongo.Connect(mongooption.Client().ApplyURI(conn.URI()))
		if err != nil {
			return err
		}
		defer client.Disconnect(ctx)
		return client.Ping(ctx, nil)
	})
	if err != nil {
		return MongoContainerConnection{}, fmt.Errorf("wait for mongo container, err: %w", err)
	}
	return conn, nil
}
